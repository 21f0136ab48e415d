// Package override implements the overrides command group for managing the
// manual override file next to the meetup data artifact.
package override

import (
	"github.com/spf13/cobra"

	"github.com/greenroomhq/greenroom/cmd/application"
)

// NewCommand creates the overrides command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "overrides",
		GroupID: "data",
		Aliases: []string{"override"},
		Short:   "Manage the manual override file",
		Long: `Overrides manages the meetup-data.override.json file that lets
organizers correct or extend the fetched data without touching the CMS.

Values in the override file win over fetched values; JSON null means
"no override". Speakers are matched by exact name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewInitCommand(app))
	cmd.AddCommand(NewCheckCommand(app))

	return cmd
}

package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/greenroomhq/greenroom/cmd/greenroom/cmd/fetch"
	"github.com/greenroomhq/greenroom/cmd/greenroom/cmd/override"
	"github.com/greenroomhq/greenroom/cmd/greenroom/cmd/show"
)

// NewFetchCommand creates the fetch command with app dependencies.
func (a *App) NewFetchCommand() *cobra.Command {
	return fetch.NewCommand(a)
}

// NewShowCommand creates the show command with app dependencies.
func (a *App) NewShowCommand() *cobra.Command {
	return show.NewCommand(a)
}

// NewOverridesCommand creates the overrides command with app dependencies.
func (a *App) NewOverridesCommand() *cobra.Command {
	return override.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("greenroom %s\n", a.version)
			cmd.Printf("  commit:   %s\n", a.commit)
			cmd.Printf("  built:    %s\n", a.date)
			cmd.Printf("  built by: %s\n", a.builtBy)
			cmd.Printf("  go:       %s\n", runtime.Version())
			cmd.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

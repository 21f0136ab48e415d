package override

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenroomhq/greenroom/cmd/application"
	"github.com/greenroomhq/greenroom/internal/deckconfig"
	"github.com/greenroomhq/greenroom/internal/overrides"
	"github.com/greenroomhq/greenroom/pkg/errors"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

// initFlags holds the init subcommand's flag values.
type initFlags struct {
	ConfigPath    string
	DataPath      string
	OverridesPath string
	ForceNames    []string
}

// NewInitCommand creates the overrides init subcommand.
func NewInitCommand(app application.Application) *cobra.Command {
	var flags initFlags

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold the override file",
		Long: `Init creates an override template with one empty slot per speaker
plus the extra fields declared in the deck config, all set to null.

Speaker names come from the existing meetup-data.json artifact; use
--force-names to scaffold for explicit names before any fetch has run.
An existing override file is never replaced.`,
		Example: `  greenroom overrides init                          # Names from meetup-data.json
  greenroom overrides init --force-names "Jane Doe,Sam Lee"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath := flags.ConfigPath
			if configPath == "" {
				configPath = app.ConfigPath()
			}
			overridesPath := flags.OverridesPath
			if overridesPath == "" {
				overridesPath = app.OverridesPath()
			}

			deck, err := deckconfig.Read(configPath)
			if err != nil {
				return err
			}

			names := flags.ForceNames
			if len(names) == 0 {
				dataPath := flags.DataPath
				if dataPath == "" {
					dataPath = app.DataPath()
				}
				if names, err = speakerNames(dataPath); err != nil {
					return err
				}
			}

			store := &overrides.OSStore{}
			created, err := overrides.Scaffold(cmd.Context(), store, overridesPath, names, deck.SpeakerExtraFields)
			if err != nil {
				return err
			}

			if created {
				cmd.Printf("Created override template at %s (%d speakers)\n", overridesPath, len(names))
			} else {
				cmd.Printf("Override file already exists at %s, keeping user edits\n", overridesPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ConfigPath, "config", "", "deck config file (default meetup.config.ts)")
	cmd.Flags().StringVar(&flags.DataPath, "data", "", "meetup data artifact path (default meetup-data.json)")
	cmd.Flags().StringVar(&flags.OverridesPath, "overrides", "", "override file path (default meetup-data.override.json)")
	cmd.Flags().StringSliceVar(&flags.ForceNames, "force-names", nil, "scaffold for these speaker names instead of reading the artifact")

	return cmd
}

// speakerNames extracts the speaker names from an existing artifact.
func speakerNames(dataPath string) ([]string, error) {
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no meetup data at %s, run \"greenroom fetch\" first or pass --force-names", dataPath)
		}
		return nil, errors.WrapIO("read", dataPath, err)
	}

	var data meetup.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapParse("json", dataPath, err)
	}

	names := make([]string, len(data.Speakers))
	for i, speaker := range data.Speakers {
		names[i] = speaker.Name
	}
	return names, nil
}

package override

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/greenroomhq/greenroom/cmd/application"
	"github.com/greenroomhq/greenroom/internal/deckconfig"
	"github.com/greenroomhq/greenroom/internal/overrides"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

// checkFlags holds the check subcommand's flag values.
type checkFlags struct {
	ConfigPath    string
	DataPath      string
	OverridesPath string
}

// NewCheckCommand creates the overrides check subcommand.
func NewCheckCommand(app application.Application) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the override file",
		Long: `Check parses the override file strictly and reports anything that
would not merge the way the author probably expects:

- speaker keys outside the known field set (they still merge, into the
  speaker's extra fields)
- speaker names with no exact match in the current artifact (those
  overrides are silently skipped by fetch)

A file that does not parse fails the check; fetch would ignore it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overridesPath := flags.OverridesPath
			if overridesPath == "" {
				overridesPath = app.OverridesPath()
			}

			store := &overrides.OSStore{}
			exists, err := store.Exists(overridesPath)
			if err != nil {
				return err
			}
			if !exists {
				cmd.Printf("No override file at %s, nothing to check\n", overridesPath)
				return nil
			}

			raw, err := store.ReadFile(overridesPath)
			if err != nil {
				return err
			}
			doc, err := overrides.Parse(raw)
			if err != nil {
				return err
			}

			report(cmd, app, &flags, doc)
			cmd.Printf("%s is valid\n", overridesPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ConfigPath, "config", "", "deck config file (default meetup.config.ts)")
	cmd.Flags().StringVar(&flags.DataPath, "data", "", "meetup data artifact path (default meetup-data.json)")
	cmd.Flags().StringVar(&flags.OverridesPath, "overrides", "", "override file path (default meetup-data.override.json)")

	return cmd
}

// report prints advisory findings. None of them fail the check: unknown keys
// merge into extra fields and unmatched names are skipped, both by contract.
func report(cmd *cobra.Command, app application.Application, flags *checkFlags, doc *overrides.Document) {
	known := knownSpeakerKeys(configPathFor(app, flags))

	for _, name := range sortedKeys(doc.Speakers) {
		var unknown []string
		for key := range doc.Speakers[name] {
			if !known[key] {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			cmd.Printf("speaker %q: keys %v are not known fields, they merge as extra fields\n", name, unknown)
		}
	}

	for _, name := range unmatchedNames(dataPathFor(app, flags), doc) {
		cmd.Printf("speaker %q: no exact name match in the current artifact, override would be skipped\n", name)
	}
}

// knownSpeakerKeys builds the set of keys that map onto fixed speaker
// fields: the canonical names, the legacy jobtitle spelling, and the extra
// fields the deck declares. A missing deck config just narrows the set.
func knownSpeakerKeys(configPath string) map[string]bool {
	known := make(map[string]bool)
	for _, key := range meetup.SpeakerFieldNames() {
		known[key] = true
	}
	known["jobtitle"] = true

	if deck, err := deckconfig.Read(configPath); err == nil {
		for _, field := range deck.SpeakerExtraFields {
			known[field] = true
		}
	}
	return known
}

// unmatchedNames returns override speaker names absent from the artifact,
// in sorted order. Without a readable artifact there is nothing to compare
// against, so it returns nothing.
func unmatchedNames(dataPath string, doc *overrides.Document) []string {
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return nil
	}
	var data meetup.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}

	current := make(map[string]bool, len(data.Speakers))
	for _, speaker := range data.Speakers {
		current[speaker.Name] = true
	}

	var missing []string
	for name := range doc.Speakers {
		if !current[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

func configPathFor(app application.Application, flags *checkFlags) string {
	if flags.ConfigPath != "" {
		return flags.ConfigPath
	}
	return app.ConfigPath()
}

func dataPathFor(app application.Application, flags *checkFlags) string {
	if flags.DataPath != "" {
		return flags.DataPath
	}
	return app.DataPath()
}

// sortedKeys returns map keys in sorted order for stable output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package fetch implements the full pipeline run: read the deck config,
// fetch the remote collections, extract the configured meetup, merge
// overrides, and write the deck artifacts.
package fetch

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/greenroomhq/greenroom/cmd/application"
	"github.com/greenroomhq/greenroom/internal/pipeline"
)

// Flags holds the fetch command's flag values. Zero values mean "not set";
// the application configuration fills those in.
type Flags struct {
	ConfigPath    string
	OutputPath    string
	OverridesPath string
	SlidesDir     string
	APIBase       string
	Timeout       time.Duration
	DryRun        bool
}

// NewCommand creates the fetch command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:     "fetch",
		GroupID: "pipeline",
		Short:   "Fetch meetup data and write the deck artifacts",
		Long: `Fetch runs the full data pipeline for the configured meetup:

1. Read the deck configuration for the meetup id and extra speaker fields
2. Fetch the meetup, speaker, and sponsor collections from the content API
3. Extract the configured meetup with its speakers and first sponsor
4. Scaffold the override file if it does not exist yet
5. Merge manual overrides into the derived data
6. Write meetup-data.json and the slide fragments

Every remote request shares one deadline; the first failure cancels the
remaining requests and aborts the run.`,
		Example: `  greenroom fetch                           # Full pipeline run
  greenroom fetch --dry-run                 # Fetch and merge, write nothing
  greenroom fetch --config decks/next.ts    # Alternate deck config
  greenroom fetch --api-base http://localhost:8055`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := app.Pipeline(buildOptions(&flags)...)
			if err != nil {
				return err
			}

			result, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(result.Summary())
			for _, path := range result.Outputs {
				cmd.Printf("  wrote %s\n", path)
			}
			return nil
		},
	}

	addFlags(cmd, &flags)
	return cmd
}

// addFlags registers the fetch-specific flags. Defaults are listed in the
// usage strings, not set on the flags, so unset flags fall back to the
// environment configuration instead of silently overriding it.
func addFlags(cmd *cobra.Command, flags *Flags) {
	cmd.Flags().StringVar(&flags.ConfigPath, "config", "", "deck config file (default meetup.config.ts)")
	cmd.Flags().StringVar(&flags.OutputPath, "output", "", "meetup data artifact path (default meetup-data.json)")
	cmd.Flags().StringVar(&flags.OverridesPath, "overrides", "", "override file path (default meetup-data.override.json)")
	cmd.Flags().StringVar(&flags.SlidesDir, "slides-dir", "", "slide fragment directory (default slides)")
	cmd.Flags().StringVar(&flags.APIBase, "api-base", "", "content API base URL (default https://api.vuejs.de)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "per-request timeout (default 30s)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "fetch and merge but write nothing")
}

// buildOptions converts set flags into pipeline options.
func buildOptions(flags *Flags) []pipeline.Option {
	var opts []pipeline.Option

	if flags.ConfigPath != "" {
		opts = append(opts, pipeline.WithConfigPath(flags.ConfigPath))
	}
	if flags.OutputPath != "" {
		opts = append(opts, pipeline.WithDataPath(flags.OutputPath))
	}
	if flags.OverridesPath != "" {
		opts = append(opts, pipeline.WithOverridesPath(flags.OverridesPath))
	}
	if flags.SlidesDir != "" {
		opts = append(opts, pipeline.WithSlidesDir(flags.SlidesDir))
	}
	if flags.APIBase != "" {
		opts = append(opts, pipeline.WithBaseURL(flags.APIBase))
	}
	if flags.Timeout > 0 {
		opts = append(opts, pipeline.WithTimeout(flags.Timeout))
	}
	if flags.DryRun {
		opts = append(opts, pipeline.WithDryRun(true))
	}

	return opts
}

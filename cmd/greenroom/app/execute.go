package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenroomhq/greenroom/pkg/logging"
)

// Execute runs the greenroom CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "greenroom",
		Short:   "Meetup slide deck data pipeline",
		Version: a.version,
		Long: `Greenroom prepares the data a meetup slide deck is built from.

It reads the deck configuration for the target meetup id, fetches the
meetup, speaker, and sponsor collections from the content API, merges in
manual overrides, and writes the meetup-data.json artifact plus the
per-speaker slide fragments the deck imports.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "pipeline",
		Title: "Pipeline Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "data",
		Title: "Data Commands:",
	})

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogFormat, "log-format", "", "log format: auto, console, json")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("greenroom {{.Version}}\n")

	// Register all commands
	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It merges parsed flag
// values into the config, rebuilds the logger, and makes it available to
// library packages through the logging default and the command context.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand,
	// so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	logLevel := mustGetString(cmd, "log-level")
	logFormat := mustGetString(cmd, "log-format")

	a.config.UpdateFromFlags(verbose, quiet, noColor, logLevel, logFormat)

	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Pipeline commands
	rootCmd.AddCommand(a.NewFetchCommand())

	// Data commands
	rootCmd.AddCommand(a.NewShowCommand())
	rootCmd.AddCommand(a.NewOverridesCommand())

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

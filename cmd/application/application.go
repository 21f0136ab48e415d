// Package application provides the application interface for greenroom commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Design Principles:
//   - Accept interfaces, return structs (Go proverb)
//   - Define interfaces where they're used, not where they're implemented
//   - Keep interfaces small and focused
//
// Usage in Commands:
//
//	import (
//	    "github.com/greenroomhq/greenroom/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            p, err := app.Pipeline()
//	            if err != nil {
//	                return err
//	            }
//	            result, err := p.Run(cmd.Context())
//	            // ... use result
//	            return err
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/greenroomhq/greenroom/internal/pipeline"
)

// Application provides the application interface that commands need.
// The App struct from cmd/greenroom/app implements this interface,
// providing dependency injection for commands while keeping them
// testable with small local stubs.
type Application interface {
	// Pipeline assembles a pipeline run. The application configuration
	// (flags, environment, defaults) forms the baseline; opts are applied
	// on top, so commands can override individual settings.
	Pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error)

	// ConfigPath returns the configured deck configuration file location.
	ConfigPath() string

	// DataPath returns the configured meetup data artifact location.
	DataPath() string

	// OverridesPath returns the configured override file location.
	OverridesPath() string

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}

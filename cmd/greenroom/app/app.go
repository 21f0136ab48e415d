// Package app provides the application context and dependency management
// for the greenroom CLI. It centralizes configuration, logging, and
// pipeline construction so commands stay thin.
package app

import (
	"github.com/rs/zerolog"

	"github.com/greenroomhq/greenroom/cmd/application"
	"github.com/greenroomhq/greenroom/internal/pipeline"
	"github.com/greenroomhq/greenroom/pkg/errors"
)

// App represents the greenroom application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// pipeline assembly, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment that
// can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// ConfigPath returns the configured deck configuration file location.
func (a *App) ConfigPath() string {
	return a.config.ConfigPath
}

// DataPath returns the configured meetup data artifact location.
func (a *App) DataPath() string {
	return a.config.DataPath
}

// OverridesPath returns the configured override file location.
func (a *App) OverridesPath() string {
	return a.config.OverridesPath
}

// Pipeline assembles a pipeline with the application configuration as the
// baseline and opts applied on top. Commands pass their flag values as
// options so flags override environment configuration.
func (a *App) Pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	baseline := []pipeline.Option{
		pipeline.WithConfigPath(a.config.ConfigPath),
		pipeline.WithDataPath(a.config.DataPath),
		pipeline.WithOverridesPath(a.config.OverridesPath),
		pipeline.WithSlidesDir(a.config.SlidesDir),
		pipeline.WithBaseURL(a.config.APIBaseURL),
		pipeline.WithAPIToken(a.config.APIToken),
		pipeline.WithTimeout(a.config.Timeout),
	}

	return pipeline.New(append(baseline, opts...)...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

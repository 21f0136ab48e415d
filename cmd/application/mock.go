package application

import (
	"github.com/rs/zerolog"

	"github.com/greenroomhq/greenroom/internal/pipeline"
	"github.com/greenroomhq/greenroom/pkg/constants"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a sensible default.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    DataPathFunc: func() string {
//	        return filepath.Join(dir, "meetup-data.json")
//	    },
//	}
//	cmd := show.NewCommand(mock)
//	// ... test command
type Mock struct {
	PipelineFunc      func(opts ...pipeline.Option) (*pipeline.Pipeline, error)
	ConfigPathFunc    func() string
	DataPathFunc      func() string
	OverridesPathFunc func() string
	LoggerFunc        func() *zerolog.Logger
	VersionFunc       func() string
	CommitFunc        func() string
	DateFunc          func() string
	BuiltByFunc       func() string
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)

// Pipeline builds a pipeline using the mock function or plain pipeline.New.
func (m *Mock) Pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	if m.PipelineFunc != nil {
		return m.PipelineFunc(opts...)
	}
	return pipeline.New(opts...)
}

// ConfigPath returns the deck config path using the mock function or the default.
func (m *Mock) ConfigPath() string {
	if m.ConfigPathFunc != nil {
		return m.ConfigPathFunc()
	}
	return constants.DefaultDeckConfigPath
}

// DataPath returns the artifact path using the mock function or the default.
func (m *Mock) DataPath() string {
	if m.DataPathFunc != nil {
		return m.DataPathFunc()
	}
	return constants.DefaultDataPath
}

// OverridesPath returns the override path using the mock function or the default.
func (m *Mock) OverridesPath() string {
	if m.OverridesPathFunc != nil {
		return m.OverridesPathFunc()
	}
	return constants.DefaultOverridesPath
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns build date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns build system using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}

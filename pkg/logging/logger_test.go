package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/greenroomhq/greenroom/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "warning message") {
		t.Errorf("Expected warning message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithEndpoint(ctx, "https://api.vuejs.de/items/meetups")
	ctx = logging.WithMeetup(ctx, 42)

	logger := logging.FromContext(ctx)
	logger.Info().Msg("test message")

	if !testLogger.Contains("items/meetups") {
		t.Errorf("Expected endpoint field in output, got: %s", testLogger.Output())
	}
	if !testLogger.Contains(`"meetup_id":42`) {
		t.Errorf("Expected meetup_id field in output, got: %s", testLogger.Output())
	}
	if !testLogger.Contains("test message") {
		t.Errorf("Expected message in output, got: %s", testLogger.Output())
	}
}

func TestFromContextFallsBack(t *testing.T) {
	if logging.FromContext(context.Background()) == nil {
		t.Fatal("FromContext should fall back to the default logger")
	}
	if logging.Ctx(nil) == nil { //nolint:staticcheck // nil context fallback is part of the contract
		t.Fatal("Ctx(nil) should fall back to the default logger")
	}
}

func TestConfiguration(t *testing.T) {
	configs := []struct {
		name   string
		config *logging.Config
		check  func(t *testing.T, output string)
	}{
		{
			name: "debug level",
			config: &logging.Config{
				Level:  "debug",
				Format: "json",
			},
			check: func(t *testing.T, output string) {
				if !strings.Contains(output, `"level":"debug"`) {
					t.Errorf("Expected debug level in output")
				}
			},
		},
		{
			name: "error level only",
			config: &logging.Config{
				Level:  "error",
				Format: "json",
			},
			check: func(t *testing.T, output string) {
				if strings.Contains(output, `"level":"info"`) {
					t.Errorf("Should not contain info level when set to error")
				}
			},
		},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.NewLoggerFromConfig(tc.config)
			logger = logger.Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Error().Msg("error")

			tc.check(t, buf.String())
		})
	}
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Info().Msg("message 1")
	tl.Logger.Error().Msg("message 2")

	if !tl.Contains("message 1") || !tl.Contains("message 2") {
		t.Errorf("Should contain both messages, got: %s", tl.Output())
	}
	if len(tl.Lines()) != 2 {
		t.Errorf("Expected 2 log entries, got %d", len(tl.Lines()))
	}
}

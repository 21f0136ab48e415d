package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/greenroomhq/greenroom/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "meetup",
			ID:       "42",
		}
		assert.Equal(t, "meetup with ID 42 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("speaker", "Jane")
		assert.Equal(t, "speaker with ID Jane not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("meetup", "7")
		wrapped := errors.Join(errors.New("extraction failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("Timeout", -1, "timeout must be non-negative")
		assert.Equal(t, "validation failed for field Timeout: timeout must be non-negative", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad input"}
		assert.Equal(t, "validation failed: bad input", err.Error())
	})
}

func TestFetchError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.FetchError{
			Endpoint:   "https://api.vuejs.de/items/meetups",
			StatusCode: 503,
			Message:    "service unavailable",
		}
		assert.Contains(t, err.Error(), "https://api.vuejs.de/items/meetups")
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "service unavailable")
		assert.True(t, errors.Is(err, pkgerrors.ErrFetchFailed))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection refused")
		err := &pkgerrors.FetchError{
			Endpoint: "https://api.vuejs.de/items/speakers",
			Message:  "request failed",
			Err:      baseErr,
		}
		assert.Contains(t, err.Error(), "items/speakers")
		assert.Contains(t, err.Error(), "request failed")
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewFetchError("https://api.vuejs.de/items/sponsors", 500, "internal server error")
		assert.Contains(t, err.Error(), "items/sponsors")
		assert.Contains(t, err.Error(), "500")
		assert.True(t, pkgerrors.IsFetchFailed(err))
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("dial timeout")
		err := pkgerrors.WrapFetch("https://api.vuejs.de/items/meetups", 0, baseErr)
		fetchErr := &pkgerrors.FetchError{}
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, "https://api.vuejs.de/items/meetups", fetchErr.Endpoint)
		assert.Equal(t, baseErr, fetchErr.Unwrap())
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "deck config",
			Message:   "meetup id not found in meetup.config.ts",
		}
		assert.Contains(t, err.Error(), "deck config")
		assert.Contains(t, err.Error(), "meetup id not found")
	})

	t.Run("without component", func(t *testing.T) {
		err := &pkgerrors.ConfigError{Message: "missing id"}
		assert.Equal(t, "configuration error: missing id", err.Error())
	})

	t.Run("constructor", func(t *testing.T) {
		base := errors.New("open meetup.config.ts: no such file")
		err := pkgerrors.NewConfigError("deck config", "cannot read config file", base)
		assert.Contains(t, err.Error(), "deck config")
		assert.Equal(t, base, err.Unwrap())
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "meetup-data.override.json",
			Message: "invalid character '}'",
		}
		assert.Contains(t, err.Error(), "json")
		assert.Contains(t, err.Error(), "meetup-data.override.json")
	})

	t.Run("with position", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "meetup-data.override.json",
			Line:    3,
			Column:  14,
			Message: "trailing comma",
		}
		assert.Contains(t, err.Error(), "3:14")
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("unexpected end of JSON input")
		err := pkgerrors.WrapParse("json", "meetup-data.override.json", baseErr)
		parseErr := &pkgerrors.ParseError{}
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, baseErr, parseErr.Unwrap())
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "write",
			Path:      "meetup-data.json",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "meetup-data.json")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "slides/speakers/1.md", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("no such directory")
		err := pkgerrors.WrapIO("create", "slides/speakers", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "create", ioErr.Operation)
		assert.Equal(t, "slides/speakers", ioErr.Path)
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "meetup-data.json", nil))
		assert.NoError(t, pkgerrors.WrapParse("json", "x.json", nil))
		assert.NoError(t, pkgerrors.WrapFetch("https://api.vuejs.de", 0, nil))
	})
}

func TestTimeoutError(t *testing.T) {
	t.Run("with duration", func(t *testing.T) {
		err := pkgerrors.NewTimeoutError("fetch meetups", "30s", "context deadline exceeded")
		assert.Contains(t, err.Error(), "fetch meetups")
		assert.Contains(t, err.Error(), "30s")
		assert.True(t, pkgerrors.IsTimeout(err))
	})

	t.Run("without duration", func(t *testing.T) {
		err := pkgerrors.NewTimeoutError("fetch sponsors", "", "gave up")
		assert.Equal(t, "operation fetch sponsors timed out: gave up", err.Error())
	})
}

func TestSentinelHelpers(t *testing.T) {
	assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	assert.False(t, pkgerrors.IsCanceled(pkgerrors.ErrTimeout))
	assert.False(t, pkgerrors.IsNotFound(nil))
	assert.False(t, pkgerrors.IsFetchFailed(errors.New("other")))
}

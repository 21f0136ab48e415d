package pipeline

import (
	"time"

	"github.com/greenroomhq/greenroom/internal/overrides"
	"github.com/greenroomhq/greenroom/pkg/constants"
	"github.com/greenroomhq/greenroom/pkg/errors"
)

// config holds the assembled settings and components for a Pipeline.
// Component fields left nil are filled with the production implementations
// in New.
type config struct {
	configPath    string
	dataPath      string
	overridesPath string
	slidesDir     string
	baseURL       string
	apiToken      string
	timeout       time.Duration
	dryRun        bool

	reader  ConfigReader
	fetcher Fetcher
	store   overrides.Store
	writer  Writer
}

func defaults() *config {
	return &config{
		configPath:    constants.DefaultDeckConfigPath,
		dataPath:      constants.DefaultDataPath,
		overridesPath: constants.DefaultOverridesPath,
		slidesDir:     constants.DefaultSlidesDir,
		baseURL:       constants.DefaultAPIBaseURL,
		timeout:       constants.DefaultHTTPTimeout,
	}
}

func (c *config) validate() error {
	if c.timeout < 0 {
		return errors.NewValidationError("timeout", c.timeout, "timeout must be non-negative")
	}
	paths := []struct {
		field string
		value string
	}{
		{"config path", c.configPath},
		{"data path", c.dataPath},
		{"overrides path", c.overridesPath},
		{"slides dir", c.slidesDir},
		{"base URL", c.baseURL},
	}
	for _, p := range paths {
		if p.value == "" {
			return errors.NewValidationError(p.field, p.value, "must not be empty")
		}
	}
	return nil
}

// Option is a function that configures a Pipeline.
type Option func(*config) error

// WithConfigPath sets the deck configuration file to read the meetup id
// and extra speaker fields from.
func WithConfigPath(path string) Option {
	return func(c *config) error {
		c.configPath = path
		return nil
	}
}

// WithDataPath sets where the merged meetup-data.json artifact is written.
func WithDataPath(path string) Option {
	return func(c *config) error {
		c.dataPath = path
		return nil
	}
}

// WithOverridesPath sets the override file location.
func WithOverridesPath(path string) Option {
	return func(c *config) error {
		c.overridesPath = path
		return nil
	}
}

// WithSlidesDir sets the directory the slide fragments are generated into.
func WithSlidesDir(dir string) Option {
	return func(c *config) error {
		c.slidesDir = dir
		return nil
	}
}

// WithBaseURL sets the content API base URL.
func WithBaseURL(url string) Option {
	return func(c *config) error {
		c.baseURL = url
		return nil
	}
}

// WithAPIToken sets the static access token sent to the content API.
// An empty token leaves requests unauthenticated, which the public
// collections accept.
func WithAPIToken(token string) Option {
	return func(c *config) error {
		c.apiToken = token
		return nil
	}
}

// WithTimeout sets the per-request timeout for remote fetches.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		c.timeout = timeout
		return nil
	}
}

// WithDryRun stops the run after the merge, skipping every file write.
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}

// WithConfigReader replaces the deck config reader.
func WithConfigReader(reader ConfigReader) Option {
	return func(c *config) error {
		c.reader = reader
		return nil
	}
}

// WithFetcher replaces the remote fetcher.
func WithFetcher(fetcher Fetcher) Option {
	return func(c *config) error {
		c.fetcher = fetcher
		return nil
	}
}

// WithStore replaces the override file store.
func WithStore(store overrides.Store) Option {
	return func(c *config) error {
		c.store = store
		return nil
	}
}

// WithWriter replaces the artifact writer.
func WithWriter(writer Writer) Option {
	return func(c *config) error {
		c.writer = writer
		return nil
	}
}

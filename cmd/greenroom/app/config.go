package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/greenroomhq/greenroom/pkg/constants"
)

// Config holds the application configuration loaded from environment
// variables, .env files, and defaults. Command-line flags are merged in
// after cobra parses them.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Pipeline configuration
	ConfigPath    string
	DataPath      string
	OverridesPath string
	SlidesDir     string
	APIBaseURL    string
	APIToken      string
	Timeout       time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (merged later via UpdateFromFlags)
//  2. GREENROOM_* environment variables
//  3. .env files
//  4. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.SetEnvPrefix("GREENROOM")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		// Pipeline configuration. The API token is deliberately env-only,
		// it never appears as a flag.
		ConfigPath:    viper.GetString("config_path"),
		DataPath:      viper.GetString("data_path"),
		OverridesPath: viper.GetString("overrides_path"),
		SlidesDir:     viper.GetString("slides_dir"),
		APIBaseURL:    viper.GetString("api_base_url"),
		APIToken:      viper.GetString("api_token"),
		Timeout:       viper.GetDuration("timeout"),

		// Logging configuration. LogLevel stays empty unless set so the
		// -v/-q shortcuts still apply; see determineLogLevel.
		LogLevel:  os.Getenv("GREENROOM_LOG_LEVEL"),
		LogFormat: getEnvOrDefault("GREENROOM_LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("GREENROOM_LOG_OUTPUT", "stderr"),
	}

	// Fill defaults for anything the environment left unset
	if config.ConfigPath == "" {
		config.ConfigPath = constants.DefaultDeckConfigPath
	}
	if config.DataPath == "" {
		config.DataPath = constants.DefaultDataPath
	}
	if config.OverridesPath == "" {
		config.OverridesPath = constants.DefaultOverridesPath
	}
	if config.SlidesDir == "" {
		config.SlidesDir = constants.DefaultSlidesDir
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = constants.DefaultAPIBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = constants.DefaultHTTPTimeout
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over env vars and .env files.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel, logFormat string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if logFormat != "" {
		c.LogFormat = logFormat
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv.Load never overrides variables that are already set, so the
// more specific file has to come first: .env.local wins over .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package constants provides shared constants used throughout the greenroom
// codebase. This includes timeouts, file permissions, default paths, and URL
// templates that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout applied to each remote fetch
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for a full CLI run
	CommandTimeout = 2 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path constants define the default locations of the deck's files, all
// relative to the deck repository root. Every one of them is overridable
// through flags or environment configuration.
const (
	// DefaultDeckConfigPath is the deck configuration file the meetup id and
	// extra speaker fields are extracted from
	DefaultDeckConfigPath = "meetup.config.ts"

	// DefaultDataPath is where the merged meetup data artifact is written
	DefaultDataPath = "meetup-data.json"

	// DefaultOverridesPath is the manual override file next to the artifact
	DefaultOverridesPath = "meetup-data.override.json"

	// DefaultSlidesDir is the directory generated slide fragments live in
	DefaultSlidesDir = "slides"
)

// Remote resource constants
const (
	// DefaultAPIBaseURL is the content API the meetup collections are
	// fetched from
	DefaultAPIBaseURL = "https://api.vuejs.de"

	// GitHubAvatarURLFormat derives an avatar image URL from a GitHub
	// username
	GitHubAvatarURLFormat = "https://github.com/%s.png"

	// GitHubProfileURLFormat derives a profile page URL from a GitHub
	// username
	GitHubProfileURLFormat = "https://github.com/%s"

	// AssetURLFormat derives a public asset URL from the API base and a
	// stored asset filename
	AssetURLFormat = "%s/assets/%s"

	// UserAgent identifies greenroom to the content API
	UserAgent = "greenroom"
)

// Format constants
const (
	// TimeFormatLog is the timestamp format used by console log output
	TimeFormatLog = "2006-01-02 15:04:05"

	// JSONIndent is the indentation unit for pretty-printed JSON artifacts
	JSONIndent = "  "
)

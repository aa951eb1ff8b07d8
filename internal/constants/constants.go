package constants

import "time"

// API endpoints.
const (
	// ProductionBaseURL is the live MangaDex API.
	ProductionBaseURL = "https://api.mangadex.org"

	// DevBaseURL is the MangaDex development sandbox.
	DevBaseURL = "https://api.mangadex.dev"

	// ForumThreadURL is the prefix for forum thread links built from a thread id.
	ForumThreadURL = "https://forums.mangadex.org/threads/"
)

// HTTP headers and content types.
const (
	// HeaderAuthorization carries the session token.
	HeaderAuthorization = "Authorization"

	// HeaderCaptchaResult carries a solved captcha token.
	HeaderCaptchaResult = "X-Captcha-Result"

	// HeaderContentType is the standard content type header.
	HeaderContentType = "Content-Type"

	// BearerPrefix precedes the session token in the Authorization header.
	BearerPrefix = "Bearer "

	// ContentTypeJSON is used for JSON request bodies.
	ContentTypeJSON = "application/json"

	// ContentTypeOctetStream is the fallback content type for uploaded files.
	ContentTypeOctetStream = "application/octet-stream"
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusNotFound is returned by the follow-check endpoints for "not following".
	HTTPStatusNotFound = 404

	// HTTPStatusInternalServerError is the first server error status.
	HTTPStatusInternalServerError = 500
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// CLI configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".mangadex"

	// ConfigFileName is the CLI config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the CLI config file format.
	ConfigFileType = "yml"

	// EnvPrefix is the prefix for environment overrides.
	EnvPrefix = "MANGADEX"
)

// Timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Output.
const (
	// JSONIndentSize is the indent used for pretty-printed JSON.
	JSONIndentSize = 2

	// FormatJSON selects JSON output.
	FormatJSON = "json"

	// FormatYAML selects YAML output.
	FormatYAML = "yaml"

	// FormatTable selects table output.
	FormatTable = "table"

	// NotAvailable is shown for empty optional values.
	NotAvailable = "N/A"

	// MaskedSecret replaces tokens in displayed configuration.
	MaskedSecret = "***"

	// DefaultListLimit is the page size used by list commands.
	DefaultListLimit = 10

	// DefaultStatsConcurrency bounds parallel statistics lookups.
	DefaultStatsConcurrency = 4

	// TableTimeLayout renders timestamps in tables.
	TableTimeLayout = "2006-01-02 15:04"
)

// Log formats.
const (
	// LogFormatConsole renders human readable log lines.
	LogFormatConsole = "console"

	// LogFormatJSON renders one JSON object per log line.
	LogFormatJSON = "json"
)

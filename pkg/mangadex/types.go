package mangadex

import (
	"net/http"
	"time"
)

// AuthTokens is the session/refresh token pair returned by a login.
// The pair is replaced wholesale; holding one means the client is logged in.
type AuthTokens struct {
	Session string `json:"session" yaml:"session"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// Mode selects how a client guards its state against concurrent dispatches.
type Mode int

const (
	// ModeExclusive fails overlapping dispatches with ErrBorrowConflict.
	ModeExclusive Mode = iota
	// ModeShared serialises dispatches behind a cancellable lock.
	ModeShared
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeShared:
		return "shared"
	case ModeExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// ParseMode returns the mode for a configuration name. An empty name is exclusive.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "exclusive":
		return ModeExclusive, true
	case "shared":
		return ModeShared, true
	default:
		return ModeExclusive, false
	}
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a mangadex client.
//
// Only BaseURL or Dev select the target API; when neither is set the
// production API is used.
type Config struct {
	// BaseURL overrides the API root, e.g. a test server.
	BaseURL string
	// Dev targets the development sandbox when BaseURL is empty.
	Dev bool
	// HTTPClient: optional custom *http.Client used as the underlying transport.
	HTTPClient *http.Client
	// HTTPTimeout applies to the default transport. Zero keeps the default.
	HTTPTimeout time.Duration
	// Mode chooses exclusive or shared state guarding.
	Mode Mode
	// AuthTokens seeds the client with an existing session.
	AuthTokens *AuthTokens
	// Captcha seeds the client with a solved captcha token.
	Captcha string
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
}

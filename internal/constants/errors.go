package constants

import "errors"

// CLI configuration errors.
var (
	ErrNotLoggedIn        = errors.New("not logged in, use 'mangadex login' first")
	ErrNoRefreshToken     = errors.New("no refresh token stored, please run 'mangadex login' again")
	ErrInvalidMode        = errors.New("invalid client mode, expected 'exclusive' or 'shared'")
	ErrUnsupportedFormat  = errors.New("unsupported output format")
	ErrUnsupportedLogType = errors.New("unsupported log format")
)

// Argument errors.
var (
	ErrUsernameRequired  = errors.New("--username or --email is required")
	ErrInvalidUUID       = errors.New("argument is not a valid UUID")
	ErrInvalidStatus     = errors.New("invalid reading status")
	ErrFileRequired      = errors.New("--file is required")
	ErrInvalidVisibility = errors.New("invalid list visibility, expected 'public' or 'private'")
	ErrInvalidLegacyType = errors.New("invalid legacy mapping type")
	ErrInvalidLegacyID   = errors.New("legacy id must be a positive integer")
)

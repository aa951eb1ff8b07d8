package mangadex

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// APIError is a single entry of an "error" envelope.
type APIError struct {
	ID      uuid.UUID              `json:"id"                yaml:"id"`
	Status  int                    `json:"status"            yaml:"status"`
	Title   *string                `json:"title,omitempty"   yaml:"title,omitempty"`
	Detail  *string                `json:"detail,omitempty"  yaml:"detail,omitempty"`
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	title := ""
	if e.Title != nil {
		title = *e.Title
	}

	if e.Detail != nil && *e.Detail != "" {
		return fmt.Sprintf("%s: %s (status: %d, id: %s)", title, *e.Detail, e.Status, e.ID)
	}

	return fmt.Sprintf("%s (status: %d, id: %s)", title, e.Status, e.ID)
}

// ErrorResponse is a decoded "error" envelope. Errors keep the server's order.
type ErrorResponse struct {
	Result ResultType `json:"result" yaml:"result"`
	Errors []APIError `json:"errors" yaml:"errors"`
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	if len(e.Errors) == 0 {
		return "unknown API error"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple errors: %v", e.Errors)
}

// FirstError returns the first error or nil.
func (e *ErrorResponse) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// ServerError is returned for any status of 500 or above. Body is the raw,
// unparsed response text.
type ServerError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps a failure to reach the server or read its reply.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body does not match the expected shape.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UninitializedFieldError is returned by Build when a required field was never set.
type UninitializedFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *UninitializedFieldError) Error() string {
	return fmt.Sprintf("field %q must be initialized", e.Field)
}

// Common static errors that can be wrapped with context.
var (
	ErrMissingTokens        = errors.New("missing auth tokens, login first")
	ErrBorrowConflict       = errors.New("client state is already in use")
	ErrNoClientHandle       = errors.New("request builder has no client handle")
	ErrMissingDiscriminator = errors.New("response has no result field")
	ErrUnknownDiscriminator = errors.New("response has an unknown result value")
	ErrMissingData          = errors.New("response has no data field")
	ErrEncodeRequest        = errors.New("could not encode request")
	ErrInvalidBaseURL       = errors.New("invalid base URL")
	ErrConfigRequired       = errors.New("config is required")
	ErrMissingRefreshToken  = errors.New("no refresh token available")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsServerError checks if the error came from a 5xx response.
func IsServerError(err error) bool {
	serverErr := &ServerError{}

	return errors.As(err, &serverErr)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	errResp := &ErrorResponse{}
	if errors.As(err, &errResp) {
		first := errResp.FirstError()
		if first != nil {
			return first.Status == status
		}
	}

	return false
}

// ParseErrorResponse parses an error envelope from JSON.
func ParseErrorResponse(data []byte) (*ErrorResponse, error) {
	var errResp ErrorResponse

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error response: %w", err)
	}

	return &errResp, nil
}

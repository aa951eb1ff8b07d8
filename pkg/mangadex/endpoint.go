package mangadex

import (
	"context"
	"net/http"
)

// Endpoint describes one API call. It is queried once per dispatch.
//
// Query and Body are mutually exclusive for a given request type: Query
// returns a value to encode into the URL, Body a value to encode as JSON.
// A non-nil Multipart takes precedence over Body.
type Endpoint interface {
	Method() string
	Path() string
	Query() any
	Body() any
	Multipart() *Multipart
	RequireAuth() bool
}

// MultipartField is a plain form field of a multipart upload.
type MultipartField struct {
	Name  string
	Value string
}

// MultipartFile is a file part of a multipart upload.
type MultipartFile struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

// Multipart is a multipart/form-data payload.
type Multipart struct {
	Fields []MultipartField
	Files  []MultipartFile
}

// RawResponse is an undecoded HTTP response.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Text returns the body as a string.
func (r *RawResponse) Text() string {
	return string(r.Body)
}

// Handle is the shared client state every request builder is given. Token and
// captcha changes are seen by requests dispatched afterwards.
type Handle interface {
	// SendRaw performs the HTTP exchange for e without interpreting the reply.
	SendRaw(ctx context.Context, e Endpoint) (*RawResponse, error)
	// Send performs the exchange and decodes a successful reply into out.
	Send(ctx context.Context, e Endpoint, out any) error

	SetAuthTokens(ctx context.Context, tokens AuthTokens) error
	ClearAuthTokens(ctx context.Context) error
	AuthTokens(ctx context.Context) (*AuthTokens, error)

	SetCaptcha(ctx context.Context, token string) error
	ClearCaptcha(ctx context.Context) error
	Captcha(ctx context.Context) (string, bool, error)
}

// noPayload is embedded by requests that carry neither query nor body.
type noPayload struct{}

func (noPayload) Query() any            { return nil }
func (noPayload) Body() any             { return nil }
func (noPayload) Multipart() *Multipart { return nil }

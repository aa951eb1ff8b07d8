// Package http wraps the HTTP transport used by the MangaDex client.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/hashicorp/go-retryablehttp"
)

// Client performs single HTTP exchanges against the API root.
type Client struct {
	baseURL    *url.URL
	httpClient *retryablehttp.Client
	logger     mangadex.Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger mangadex.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient.HTTPClient = client
		}
	}
}

// WithTimeout sets the timeout of the underlying *http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// NewClient creates a new HTTP client for baseURL. Retries are disabled: every
// call is exactly one exchange and every status is handed back to the caller.
func NewClient(baseURL *url.URL, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = func(context.Context, *http.Response, error) (bool, error) {
		return false, nil
	}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    baseURL,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug && client.logger != nil {
		retryClient.RequestLogHook = client.logRequest
		retryClient.ResponseLogHook = client.logResponse
	}

	return client
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// Request represents an HTTP request.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      interface{}
	Multipart *mangadex.Multipart
	Headers   map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do executes the request. Only failures below HTTP are returned as errors;
// they are always *mangadex.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target := c.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	payload, contentType, err := encodePayload(req)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if payload != nil {
		rawBody = payload
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target.String(), rawBody)
	if err != nil {
		return nil, &mangadex.TransportError{Method: req.Method, URL: target.String(), Err: err}
	}

	if contentType != "" {
		httpReq.Header.Set(constants.HeaderContentType, contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &mangadex.TransportError{Method: req.Method, URL: target.String(), Err: err}
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &mangadex.TransportError{Method: req.Method, URL: target.String(), Err: fmt.Errorf("reading response body: %w", err)}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

// encodePayload renders the request payload. A multipart form takes precedence
// over a JSON body.
func encodePayload(req *Request) ([]byte, string, error) {
	if req.Multipart != nil {
		return encodeMultipart(req.Multipart)
	}

	if req.Body == nil {
		return nil, "", nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: marshaling body: %w", mangadex.ErrEncodeRequest, err)
	}

	return data, constants.ContentTypeJSON, nil
}

func encodeMultipart(form *mangadex.Multipart) ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for _, file := range form.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.FileName))
		header.Set(constants.HeaderContentType, file.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("%w: creating form file: %w", mangadex.ErrEncodeRequest, err)
		}

		if _, err := part.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("%w: writing form file: %w", mangadex.ErrEncodeRequest, err)
		}
	}

	for _, field := range form.Fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, "", fmt.Errorf("%w: writing form field: %w", mangadex.ErrEncodeRequest, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: closing form: %w", mangadex.ErrEncodeRequest, err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status": resp.StatusCode,
		"method": resp.Request.Method,
		"url":    resp.Request.URL.String(),
	})
}

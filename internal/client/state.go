package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/internal/http"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/google/go-querystring/query"
)

// state is everything a dispatch reads. It is only touched while borrowed
// from a cell.
type state struct {
	transport  *http.Client
	authTokens *mangadex.AuthTokens
	captcha    *string
}

// sendRaw builds the HTTP request for e and performs it.
func (s *state) sendRaw(ctx context.Context, e mangadex.Endpoint) (*mangadex.RawResponse, error) {
	headers := make(map[string]string)

	if s.authTokens != nil {
		headers[constants.HeaderAuthorization] = constants.BearerPrefix + s.authTokens.Session
	} else if e.RequireAuth() {
		return nil, mangadex.ErrMissingTokens
	}

	if s.captcha != nil {
		headers[constants.HeaderCaptchaResult] = *s.captcha
	}

	req := &http.Request{
		Method:    e.Method(),
		Path:      e.Path(),
		Body:      e.Body(),
		Multipart: e.Multipart(),
		Headers:   headers,
	}

	if q := e.Query(); q != nil {
		values, err := query.Values(q)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding query: %w", mangadex.ErrEncodeRequest, err)
		}

		req.Query = values
	}

	resp, err := s.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	return &mangadex.RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Headers,
		Body:       resp.Body,
	}, nil
}

// send performs e and classifies the reply into out.
func (s *state) send(ctx context.Context, e mangadex.Endpoint, out any) error {
	raw, err := s.sendRaw(ctx, e)
	if err != nil {
		return err
	}

	return mangadex.ClassifyResponse(raw, out)
}

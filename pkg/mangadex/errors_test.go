package mangadex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	err := &mangadex.APIError{Status: 404, Title: strPtr("Not found"), Detail: strPtr("Chapter does not exist")}
	assert.Contains(t, err.Error(), "Not found: Chapter does not exist")
	assert.Contains(t, err.Error(), "status: 404")

	bare := &mangadex.APIError{Status: 400}
	assert.Contains(t, bare.Error(), "status: 400")
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("no errors", func(t *testing.T) {
		t.Parallel()

		err := &mangadex.ErrorResponse{}
		assert.Equal(t, "unknown API error", err.Error())
		assert.Nil(t, err.FirstError())
	})

	t.Run("single error", func(t *testing.T) {
		t.Parallel()

		err := &mangadex.ErrorResponse{Errors: []mangadex.APIError{{Status: 400, Title: strPtr("Invalid limit")}}}
		assert.Contains(t, err.Error(), "Invalid limit")
		assert.Equal(t, 400, err.FirstError().Status)
	})

	t.Run("multiple errors", func(t *testing.T) {
		t.Parallel()

		err := &mangadex.ErrorResponse{Errors: []mangadex.APIError{{Status: 400}, {Status: 401}}}
		assert.Contains(t, err.Error(), "multiple errors")
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	wrap := func(status int) error {
		return fmt.Errorf("fetching: %w", &mangadex.ErrorResponse{Errors: []mangadex.APIError{{Status: status}}})
	}

	assert.True(t, mangadex.IsNotFound(wrap(404)))
	assert.False(t, mangadex.IsNotFound(wrap(400)))
	assert.True(t, mangadex.IsUnauthorized(wrap(401)))
	assert.True(t, mangadex.IsForbidden(wrap(403)))
	assert.True(t, mangadex.IsForbidden(&mangadex.APIError{Status: 403}))
	assert.False(t, mangadex.IsNotFound(mangadex.ErrMissingTokens))
	assert.True(t, mangadex.IsServerError(fmt.Errorf("x: %w", &mangadex.ServerError{StatusCode: 500})))
	assert.False(t, mangadex.IsServerError(wrap(404)))
}

func TestWrappedErrors(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection reset")

	transport := &mangadex.TransportError{Method: "GET", URL: "https://api.mangadex.org/chapter", Err: inner}
	require.ErrorIs(t, transport, inner)
	assert.Contains(t, transport.Error(), "GET https://api.mangadex.org/chapter")

	decode := &mangadex.DecodeError{Err: mangadex.ErrMissingData}
	require.ErrorIs(t, decode, mangadex.ErrMissingData)

	uninit := &mangadex.UninitializedFieldError{Field: "chapter_id"}
	assert.Equal(t, `field "chapter_id" must be initialized`, uninit.Error())
}

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	resp, err := mangadex.ParseErrorResponse([]byte(`{"result":"error","errors":[{"id":"11111111-1111-1111-1111-111111111111","status":403,"title":"Forbidden","context":{"scope":"chapter"}}]}`))
	require.NoError(t, err)
	assert.Equal(t, mangadex.ResultError, resp.Result)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "chapter", resp.Errors[0].Context["scope"])

	_, err = mangadex.ParseErrorResponse([]byte(`[`))
	require.Error(t, err)
}

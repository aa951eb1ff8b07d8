package mangadex_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chapterEntity = `{
	"result": "ok",
	"response": "entity",
	"data": {
		"id": "a54c491c-8e4c-4e97-8873-5b79e59da210",
		"type": "chapter",
		"attributes": {
			"title": "The Beginning",
			"volume": "1",
			"chapter": "1",
			"pages": 24,
			"translatedLanguage": "en",
			"externalUrl": null,
			"version": 3,
			"createdAt": "2021-05-01T10:00:00+00:00",
			"updatedAt": null,
			"publishAt": "2021-05-02T10:00:00+00:00",
			"readableAt": "2021-05-02T10:00:00+00:00"
		},
		"relationships": [
			{"id": "b54c491c-8e4c-4e97-8873-5b79e59da210", "type": "scanlation_group"}
		]
	}
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	t.Run("ok entity", func(t *testing.T) {
		t.Parallel()

		var resp mangadex.ChapterResponse

		require.NoError(t, mangadex.DecodeResponse([]byte(chapterEntity), &resp))
		assert.Equal(t, mangadex.ResultOK, resp.Result)
		assert.Equal(t, mangadex.ResponseEntity, resp.Response)
		assert.Equal(t, uuid.MustParse("a54c491c-8e4c-4e97-8873-5b79e59da210"), resp.Data.ID)
		assert.Equal(t, mangadex.RelationshipChapter, resp.Data.Type)
		assert.Equal(t, "The Beginning", resp.Data.Attributes.Title)
		assert.Equal(t, 24, resp.Data.Attributes.Pages)
		assert.Equal(t, mangadex.LanguageEnglish, resp.Data.Attributes.TranslatedLanguage)
		assert.Nil(t, resp.Data.Attributes.UpdatedAt)
		require.Len(t, resp.Data.Relationships, 1)
		assert.Equal(t, mangadex.RelationshipScanlationGroup, resp.Data.Relationships[0].Type)
	})

	t.Run("error envelope keeps order and count", func(t *testing.T) {
		t.Parallel()

		body := `{"result":"error","errors":[
			{"id":"11111111-1111-1111-1111-111111111111","status":400,"title":"First","detail":"one"},
			{"id":"22222222-2222-2222-2222-222222222222","status":400,"title":"Second"},
			{"id":"33333333-3333-3333-3333-333333333333","status":400}
		]}`

		err := mangadex.DecodeResponse([]byte(body), &mangadex.NoDataResponse{})

		errResp := &mangadex.ErrorResponse{}
		require.ErrorAs(t, err, &errResp)
		require.Len(t, errResp.Errors, 3)
		assert.Equal(t, "First", *errResp.Errors[0].Title)
		assert.Equal(t, "Second", *errResp.Errors[1].Title)
		assert.Nil(t, errResp.Errors[1].Detail)
		assert.Nil(t, errResp.Errors[2].Title)
		assert.Equal(t, uuid.MustParse("33333333-3333-3333-3333-333333333333"), errResp.Errors[2].ID)
	})

	t.Run("empty error list is still an API error", func(t *testing.T) {
		t.Parallel()

		err := mangadex.DecodeResponse([]byte(`{"result":"error","errors":[]}`), &mangadex.NoDataResponse{})

		errResp := &mangadex.ErrorResponse{}
		require.ErrorAs(t, err, &errResp)
		assert.Empty(t, errResp.Errors)
		assert.Nil(t, errResp.FirstError())
	})

	tests := []struct {
		name   string
		body   string
		target error
	}{
		{name: "missing discriminator", body: `{"data":{}}`, target: mangadex.ErrMissingDiscriminator},
		{name: "unknown discriminator", body: `{"result":"maybe"}`, target: mangadex.ErrUnknownDiscriminator},
		{name: "ok entity without data", body: `{"result":"ok","response":"entity"}`, target: mangadex.ErrMissingData},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := mangadex.DecodeResponse([]byte(testCase.body), &mangadex.ChapterResponse{})

			decodeErr := &mangadex.DecodeError{}
			require.ErrorAs(t, err, &decodeErr)
			assert.ErrorIs(t, err, testCase.target)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		err := mangadex.DecodeResponse([]byte(`{"result":`), &mangadex.NoDataResponse{})

		decodeErr := &mangadex.DecodeError{}
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()

		body := `{"result":"ok","response":"entity","data":{"id":"a54c491c-8e4c-4e97-8873-5b79e59da210","type":"chapter","attributes":{"pages":"many"},"relationships":[]}}`

		err := mangadex.DecodeResponse([]byte(body), &mangadex.ChapterResponse{})

		decodeErr := &mangadex.DecodeError{}
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("collection without data", func(t *testing.T) {
		t.Parallel()

		err := mangadex.DecodeResponse([]byte(`{"result":"ok","response":"collection","limit":1,"offset":0,"total":0}`), &mangadex.ChapterCollection{})
		require.ErrorIs(t, err, mangadex.ErrMissingData)
	})

	t.Run("no data response", func(t *testing.T) {
		t.Parallel()

		var resp mangadex.NoDataResponse

		require.NoError(t, mangadex.DecodeResponse([]byte(`{"result":"ok"}`), &resp))
		assert.Equal(t, mangadex.ResultOK, resp.Result)
	})
}

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()

	var first mangadex.ChapterResponse

	require.NoError(t, json.Unmarshal([]byte(chapterEntity), &first))

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	var second mangadex.ChapterResponse

	require.NoError(t, json.Unmarshal(encoded, &second))
	assert.Equal(t, first, second)
}

func TestClassifyResponse(t *testing.T) {
	t.Parallel()

	t.Run("server error keeps exact body", func(t *testing.T) {
		t.Parallel()

		raw := &mangadex.RawResponse{StatusCode: http.StatusBadGateway, Body: []byte("<html>bad gateway</html>")}

		err := mangadex.ClassifyResponse(raw, &mangadex.NoDataResponse{})

		serverErr := &mangadex.ServerError{}
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, 502, serverErr.StatusCode)
		assert.Equal(t, "<html>bad gateway</html>", serverErr.Body)
		assert.True(t, mangadex.IsServerError(err))
	})

	t.Run("server error body with a valid envelope is not parsed", func(t *testing.T) {
		t.Parallel()

		raw := &mangadex.RawResponse{StatusCode: 500, Body: []byte(`{"result":"ok"}`)}

		err := mangadex.ClassifyResponse(raw, &mangadex.NoDataResponse{})

		serverErr := &mangadex.ServerError{}
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, `{"result":"ok"}`, serverErr.Body)
	})

	t.Run("client error with envelope", func(t *testing.T) {
		t.Parallel()

		raw := &mangadex.RawResponse{
			StatusCode: 400,
			Body:       []byte(`{"result":"error","errors":[{"id":"11111111-1111-1111-1111-111111111111","status":400,"title":"Invalid limit"}]}`),
		}

		err := mangadex.ClassifyResponse(raw, &mangadex.ChapterCollection{})

		errResp := &mangadex.ErrorResponse{}
		require.ErrorAs(t, err, &errResp)
		assert.Equal(t, "Invalid limit", *errResp.FirstError().Title)
	})
}

func TestFollowStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		following  bool
		wantAPIErr bool
		wantServer bool
		wantDecode bool
	}{
		{name: "ok", status: 200, body: `{"result":"ok"}`, following: true},
		{name: "ok with empty body", status: 200, following: true},
		{name: "not found with empty list", status: 404, body: `{"result":"ok","errors":[]}`},
		{name: "not found without list", status: 404, body: `{"result":"ok"}`},
		{name: "not found with empty body", status: 404},
		{
			name:       "not found with errors",
			status:     404,
			body:       `{"result":"error","errors":[{"id":"11111111-1111-1111-1111-111111111111","status":404,"title":"Not found"}]}`,
			wantAPIErr: true,
		},
		{name: "not found with garbage", status: 404, body: `not json`, wantDecode: true},
		{name: "unauthorized", status: 401, body: `{"result":"error","errors":[]}`, wantServer: true},
		{name: "server error", status: 503, body: `down`, wantServer: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			following, err := mangadex.FollowStatus(&mangadex.RawResponse{StatusCode: testCase.status, Body: []byte(testCase.body)})

			switch {
			case testCase.wantAPIErr:
				errResp := &mangadex.ErrorResponse{}
				require.ErrorAs(t, err, &errResp)
				assert.Len(t, errResp.Errors, 1)
				assert.True(t, mangadex.IsNotFound(err))
			case testCase.wantServer:
				serverErr := &mangadex.ServerError{}
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, testCase.status, serverErr.StatusCode)
				assert.Equal(t, testCase.body, serverErr.Body)
			case testCase.wantDecode:
				decodeErr := &mangadex.DecodeError{}
				require.ErrorAs(t, err, &decodeErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, testCase.following, following)
			}
		})
	}
}

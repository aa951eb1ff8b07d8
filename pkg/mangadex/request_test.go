package mangadex_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHandle answers every dispatch with a canned reply and records what it was sent.
type fakeHandle struct {
	reply   *mangadex.RawResponse
	sent    []mangadex.Endpoint
	tokens  *mangadex.AuthTokens
	captcha *string
}

func (h *fakeHandle) SendRaw(_ context.Context, e mangadex.Endpoint) (*mangadex.RawResponse, error) {
	h.sent = append(h.sent, e)

	if h.reply == nil {
		return &mangadex.RawResponse{StatusCode: http.StatusOK, Body: []byte(`{"result":"ok"}`)}, nil
	}

	return h.reply, nil
}

func (h *fakeHandle) Send(ctx context.Context, e mangadex.Endpoint, out any) error {
	raw, err := h.SendRaw(ctx, e)
	if err != nil {
		return err
	}

	return mangadex.ClassifyResponse(raw, out)
}

func (h *fakeHandle) SetAuthTokens(_ context.Context, tokens mangadex.AuthTokens) error {
	h.tokens = &tokens

	return nil
}

func (h *fakeHandle) ClearAuthTokens(_ context.Context) error {
	h.tokens = nil

	return nil
}

func (h *fakeHandle) AuthTokens(_ context.Context) (*mangadex.AuthTokens, error) {
	return h.tokens, nil
}

func (h *fakeHandle) SetCaptcha(_ context.Context, token string) error {
	h.captcha = &token

	return nil
}

func (h *fakeHandle) ClearCaptcha(_ context.Context) error {
	h.captcha = nil

	return nil
}

func (h *fakeHandle) Captcha(_ context.Context) (string, bool, error) {
	if h.captcha == nil {
		return "", false, nil
	}

	return *h.captcha, true, nil
}

func okReply(body string) *mangadex.RawResponse {
	return &mangadex.RawResponse{StatusCode: http.StatusOK, Body: []byte(body)}
}

func bodyJSON(t *testing.T, e mangadex.Endpoint) string {
	t.Helper()

	data, err := json.Marshal(e.Body())
	require.NoError(t, err)

	return string(data)
}

var testID = uuid.MustParse("a54c491c-8e4c-4e97-8873-5b79e59da210")

// buildErr keeps only the error of a Build call.
func buildErr[T any](_ T, err error) error {
	return err
}

func TestBuildersRequireHandle(t *testing.T) {
	t.Parallel()

	tests := map[string]error{
		"list chapter":      buildErr(mangadex.NewListChapterBuilder(nil).Build()),
		"get chapter":       buildErr(mangadex.NewGetChapterBuilder(nil).ChapterID(testID).Build()),
		"login":             buildErr(mangadex.NewLoginBuilder(nil).Username("u").Password("p").Build()),
		"logout":            buildErr(mangadex.NewLogoutBuilder(nil).Build()),
		"me":                buildErr(mangadex.NewGetMeBuilder(nil).Build()),
		"follow list":       buildErr(mangadex.NewIsFollowingListBuilder(nil).ID(testID).Build()),
		"tags":              buildErr(mangadex.NewListTagsBuilder(nil).Build()),
		"author without id": buildErr(mangadex.NewGetAuthorBuilder(nil).Build()),
	}

	for name, err := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, err, mangadex.ErrNoClientHandle)
		})
	}
}

func TestBuildersRequireFields(t *testing.T) {
	t.Parallel()

	handle := &fakeHandle{}

	tests := []struct {
		name  string
		err   error
		field string
	}{
		{name: "get chapter", err: buildErr(mangadex.NewGetChapterBuilder(handle).Build()), field: "chapter_id"},
		{name: "delete chapter", err: buildErr(mangadex.NewDeleteChapterBuilder(handle).Version(2).Build()), field: "chapter_id"},
		{name: "is following group", err: buildErr(mangadex.NewIsFollowingGroupBuilder(handle).Build()), field: "group_id"},
		{name: "is following user", err: buildErr(mangadex.NewIsFollowingUserBuilder(handle).Build()), field: "user_id"},
		{name: "is following manga", err: buildErr(mangadex.NewIsFollowingMangaBuilder(handle).Build()), field: "manga_id"},
		{name: "login without identity", err: buildErr(mangadex.NewLoginBuilder(handle).Password("p").Build()), field: "username"},
		{name: "login without password", err: buildErr(mangadex.NewLoginBuilder(handle).Email("a@b.c").Build()), field: "password"},
		{name: "solve captcha", err: buildErr(mangadex.NewSolveCaptchaBuilder(handle).Build()), field: "captcha_challenge"},
		{name: "create custom list", err: buildErr(mangadex.NewCreateCustomListBuilder(handle).Build()), field: "name"},
		{name: "upload cover without file", err: buildErr(mangadex.NewUploadCoverBuilder(handle).MangaID(testID).Build()), field: "file"},
		{name: "upload cover without manga", err: buildErr(mangadex.NewUploadCoverBuilder(handle).File("c", []byte("x")).Build()), field: "manga_id"},
		{
			name:  "legacy mapping without ids",
			err:   buildErr(mangadex.NewLegacyIDMappingBuilder(handle).MappingType(mangadex.LegacyMappingChapter).Build()),
			field: "ids",
		},
		{name: "legacy mapping without type", err: buildErr(mangadex.NewLegacyIDMappingBuilder(handle).AddID(1).Build()), field: "type"},
		{name: "find chapter statistics", err: buildErr(mangadex.NewFindChapterStatisticsBuilder(handle).Build()), field: "chapter"},
		{name: "get author", err: buildErr(mangadex.NewGetAuthorBuilder(handle).Build()), field: "author_id"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fieldErr := &mangadex.UninitializedFieldError{}
			require.ErrorAs(t, testCase.err, &fieldErr)
			assert.Equal(t, testCase.field, fieldErr.Field)
		})
	}
}

func TestEndpointDescriptors(t *testing.T) {
	t.Parallel()

	handle := &fakeHandle{}

	getChapter, err := mangadex.NewGetChapterBuilder(handle).ChapterID(testID).Build()
	require.NoError(t, err)

	deleteChapter, err := mangadex.NewDeleteChapterBuilder(handle).ChapterID(testID).Build()
	require.NoError(t, err)

	follows, err := mangadex.NewIsFollowingMangaBuilder(handle).ID(testID).Build()
	require.NoError(t, err)

	status, err := mangadex.NewUpdateMangaReadingStatusBuilder(handle).MangaID(testID).Build()
	require.NoError(t, err)

	tests := []struct {
		name     string
		endpoint mangadex.Endpoint
		method   string
		path     string
		auth     bool
	}{
		{name: "get chapter", endpoint: getChapter, method: http.MethodGet, path: "/chapter/" + testID.String()},
		{name: "delete chapter", endpoint: deleteChapter, method: http.MethodDelete, path: "/chapter/" + testID.String(), auth: true},
		{name: "is following manga", endpoint: follows, method: http.MethodGet, path: "/user/follows/manga/" + testID.String(), auth: true},
		{name: "update status", endpoint: status, method: http.MethodPost, path: "/manga/" + testID.String() + "/status", auth: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.method, testCase.endpoint.Method())
			assert.Equal(t, testCase.path, testCase.endpoint.Path())
			assert.Equal(t, testCase.auth, testCase.endpoint.RequireAuth())
			assert.Nil(t, testCase.endpoint.Multipart())
		})
	}
}

func TestRequestPayloads(t *testing.T) {
	t.Parallel()

	handle := &fakeHandle{}

	t.Run("cleared reading status is sent as null", func(t *testing.T) {
		t.Parallel()

		req, err := mangadex.NewUpdateMangaReadingStatusBuilder(handle).
			MangaID(testID).
			Status(mangadex.ReadingStatusReading).
			ClearStatus().
			Build()
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":null}`, bodyJSON(t, req))
	})

	t.Run("reading status", func(t *testing.T) {
		t.Parallel()

		req, err := mangadex.NewUpdateMangaReadingStatusBuilder(handle).MangaID(testID).Status(mangadex.ReadingStatusReading).Build()
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"reading"}`, bodyJSON(t, req))
	})

	t.Run("login by email", func(t *testing.T) {
		t.Parallel()

		req, err := mangadex.NewLoginBuilder(handle).Email("reader@example.com").Password("secret").Build()
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"reader@example.com","password":"secret"}`, bodyJSON(t, req))
	})

	t.Run("custom list", func(t *testing.T) {
		t.Parallel()

		req, err := mangadex.NewCreateCustomListBuilder(handle).
			Name("Favourites").
			Visibility(mangadex.CustomListPrivate).
			AddManga(testID).
			Build()
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Favourites","visibility":"private","manga":["`+testID.String()+`"]}`, bodyJSON(t, req))
	})

	t.Run("legacy mapping", func(t *testing.T) {
		t.Parallel()

		req, err := mangadex.NewLegacyIDMappingBuilder(handle).MappingType(mangadex.LegacyMappingChapter).AddID(1).AddID(42).Build()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"chapter","ids":[1,42]}`, bodyJSON(t, req))
	})

	t.Run("delete chapter version goes in the query", func(t *testing.T) {
		t.Parallel()

		req, err := mangadex.NewDeleteChapterBuilder(handle).ChapterID(testID).Version(3).Build()
		require.NoError(t, err)
		assert.Nil(t, req.Body())

		values, err := query.Values(req.Query())
		require.NoError(t, err)
		assert.Equal(t, "3", values.Get("version"))

		unversioned, err := mangadex.NewDeleteChapterBuilder(handle).ChapterID(testID).Build()
		require.NoError(t, err)
		assert.Nil(t, unversioned.Query())
	})

	t.Run("chapter statistics query", func(t *testing.T) {
		t.Parallel()

		other := uuid.MustParse("b54c491c-8e4c-4e97-8873-5b79e59da210")

		req, err := mangadex.NewFindChapterStatisticsBuilder(handle).AddChapter(testID).AddChapter(other).Build()
		require.NoError(t, err)

		values, err := query.Values(req.Query())
		require.NoError(t, err)
		assert.Equal(t, []string{testID.String(), other.String()}, values["chapter[]"])
	})

	t.Run("includes on a single fetch", func(t *testing.T) {
		t.Parallel()

		req, err := mangadex.NewGetGroupBuilder(handle).GroupID(testID).Include(mangadex.IncludeLeader).Build()
		require.NoError(t, err)

		values, err := query.Values(req.Query())
		require.NoError(t, err)
		assert.Equal(t, []string{"leader"}, values["includes[]"])
		assert.NotContains(t, values, "GroupID")
	})
}

func TestUploadCoverMultipart(t *testing.T) {
	t.Parallel()

	req, err := mangadex.NewUploadCoverBuilder(&fakeHandle{}).
		MangaID(testID).
		File("cover.png", []byte{0x89, 'P', 'N', 'G'}).
		ContentType("image/png").
		Volume("1").
		Locale(mangadex.LanguageJapanese).
		Build()
	require.NoError(t, err)

	form := req.Multipart()
	require.NotNil(t, form)
	require.Len(t, form.Files, 1)
	assert.Equal(t, "file", form.Files[0].Field)
	assert.Equal(t, "cover.png", form.Files[0].FileName)
	assert.Equal(t, "image/png", form.Files[0].ContentType)
	assert.Equal(t, []mangadex.MultipartField{
		{Name: "volume", Value: "1"},
		{Name: "locale", Value: "ja"},
	}, form.Fields)

	bare, err := mangadex.NewUploadCoverBuilder(&fakeHandle{}).MangaID(testID).File("cover", []byte("x")).Build()
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", bare.Multipart().Files[0].ContentType)
	assert.Empty(t, bare.Multipart().Fields)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestAuthFlows(t *testing.T) {
	t.Parallel()

	t.Run("login stores tokens", func(t *testing.T) {
		t.Parallel()

		handle := &fakeHandle{reply: okReply(`{"result":"ok","token":{"session":"s1","refresh":"r1"}}`)}

		req, err := mangadex.NewLoginBuilder(handle).Username("reader").Password("secret").Build()
		require.NoError(t, err)

		resp, err := req.Send(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "s1", resp.Token.Session)
		assert.Equal(t, &mangadex.AuthTokens{Session: "s1", Refresh: "r1"}, handle.tokens)
	})

	t.Run("failed login keeps previous tokens", func(t *testing.T) {
		t.Parallel()

		handle := &fakeHandle{
			reply: &mangadex.RawResponse{
				StatusCode: http.StatusUnauthorized,
				Body:       []byte(`{"result":"error","errors":[{"id":"11111111-1111-1111-1111-111111111111","status":401,"title":"Unauthorized"}]}`),
			},
			tokens: &mangadex.AuthTokens{Session: "old", Refresh: "old"},
		}

		req, err := mangadex.NewLoginBuilder(handle).Username("reader").Password("wrong").Build()
		require.NoError(t, err)

		_, err = req.Send(context.Background())
		require.Error(t, err)
		assert.True(t, mangadex.IsUnauthorized(err))
		assert.Equal(t, "old", handle.tokens.Session)
	})

	t.Run("logout clears tokens", func(t *testing.T) {
		t.Parallel()

		handle := &fakeHandle{tokens: &mangadex.AuthTokens{Session: "s", Refresh: "r"}}

		req, err := mangadex.NewLogoutBuilder(handle).Build()
		require.NoError(t, err)

		_, err = req.Send(context.Background())
		require.NoError(t, err)
		assert.Nil(t, handle.tokens)
	})

	t.Run("refresh uses the stored token", func(t *testing.T) {
		t.Parallel()

		handle := &fakeHandle{
			reply:  okReply(`{"result":"ok","token":{"session":"s2","refresh":"r2"}}`),
			tokens: &mangadex.AuthTokens{Session: "s1", Refresh: "r1"},
		}

		req, err := mangadex.NewRefreshTokenBuilder(handle).Build()
		require.NoError(t, err)

		_, err = req.Send(context.Background())
		require.NoError(t, err)

		require.Len(t, handle.sent, 1)
		assert.JSONEq(t, `{"token":"r1"}`, bodyJSON(t, handle.sent[0]))
		assert.Equal(t, &mangadex.AuthTokens{Session: "s2", Refresh: "r2"}, handle.tokens)
		assert.Empty(t, req.Token)
	})

	t.Run("refresh without any token", func(t *testing.T) {
		t.Parallel()

		handle := &fakeHandle{}

		req, err := mangadex.NewRefreshTokenBuilder(handle).Build()
		require.NoError(t, err)

		_, err = req.Send(context.Background())
		require.ErrorIs(t, err, mangadex.ErrMissingRefreshToken)
		assert.Empty(t, handle.sent)
	})

	t.Run("explicit refresh token wins", func(t *testing.T) {
		t.Parallel()

		handle := &fakeHandle{
			reply:  okReply(`{"result":"ok","token":{"session":"s2","refresh":"r2"}}`),
			tokens: &mangadex.AuthTokens{Session: "s1", Refresh: "r1"},
		}

		req, err := mangadex.NewRefreshTokenBuilder(handle).Token("given").Build()
		require.NoError(t, err)

		_, err = req.Send(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `{"token":"given"}`, bodyJSON(t, handle.sent[0]))
	})
}

func TestFollowCheckSend(t *testing.T) {
	t.Parallel()

	handle := &fakeHandle{reply: &mangadex.RawResponse{StatusCode: http.StatusNotFound, Body: []byte(`{"result":"ok","errors":[]}`)}}

	req, err := mangadex.NewIsFollowingGroupBuilder(handle).ID(testID).Build()
	require.NoError(t, err)

	following, err := req.Send(context.Background())
	require.NoError(t, err)
	assert.False(t, following)
}

func TestReadingStatusesDecode(t *testing.T) {
	t.Parallel()

	handle := &fakeHandle{reply: okReply(`{"result":"ok","statuses":{"` + testID.String() + `":"completed"}}`)}

	req, err := mangadex.NewMangaReadingStatusesBuilder(handle).Build()
	require.NoError(t, err)

	resp, err := req.Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mangadex.ReadingStatusCompleted, resp.Statuses[testID])
}

func TestChapterAttributesNullTitle(t *testing.T) {
	t.Parallel()

	var attrs mangadex.ChapterAttributes

	body := `{"title":null,"volume":null,"chapter":"5","pages":3,"translatedLanguage":"en","externalUrl":null,` +
		`"version":1,"createdAt":"2021-05-01T10:00:00+00:00","updatedAt":null,` +
		`"publishAt":"2021-05-01T10:00:00+00:00","readableAt":"2021-05-01T10:00:00+00:00"}`

	require.NoError(t, json.Unmarshal([]byte(body), &attrs))
	assert.Empty(t, attrs.Title)
	assert.Nil(t, attrs.Volume)
	assert.Equal(t, "5", *attrs.Chapter)
	assert.Equal(t, 3, attrs.Pages)
}

func TestCommentsThreadURL(t *testing.T) {
	t.Parallel()

	comments := mangadex.Comments{ThreadID: 12345, RepliesCount: 2}
	assert.Equal(t, "https://forums.mangadex.org/threads/12345", comments.ThreadURL())
}

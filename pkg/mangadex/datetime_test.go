package mangadex_test

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateTime(t *testing.T) {
	t.Parallel()

	t.Run("marshals with numeric offset", func(t *testing.T) {
		t.Parallel()

		dt := mangadex.NewDateTime(time.Date(2021, 5, 1, 10, 0, 0, 123, time.UTC))

		data, err := json.Marshal(dt)
		require.NoError(t, err)
		assert.JSONEq(t, `"2021-05-01T10:00:00+00:00"`, string(data))
	})

	t.Run("unmarshals RFC 3339", func(t *testing.T) {
		t.Parallel()

		var dt mangadex.DateTime

		require.NoError(t, json.Unmarshal([]byte(`"2021-05-01T12:00:00+02:00"`), &dt))
		assert.True(t, dt.Equal(time.Date(2021, 5, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		t.Parallel()

		var dt mangadex.DateTime

		require.Error(t, json.Unmarshal([]byte(`"01/05/2021"`), &dt))
		require.Error(t, json.Unmarshal([]byte(`12`), &dt))
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		out, err := yaml.Marshal(map[string]mangadex.DateTime{"at": mangadex.NewDateTime(time.Date(2021, 5, 1, 10, 0, 0, 0, time.UTC))})
		require.NoError(t, err)
		assert.Contains(t, string(out), "2021-05-01T10:00:00+00:00")
	})

	t.Run("query encoding is UTC without offset", func(t *testing.T) {
		t.Parallel()

		at := mangadex.NewDateTime(time.Date(2021, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60)))

		values := url.Values{}
		require.NoError(t, at.EncodeValues("createdAtSince", &values))
		assert.Equal(t, "2021-05-01T10:00:00", values.Get("createdAtSince"))
	})
}

func TestLocalizedString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected mangadex.LocalizedString
	}{
		{name: "object", input: `{"en":"Hello","ja":"こんにちは"}`, expected: mangadex.LocalizedString{"en": "Hello", "ja": "こんにちは"}},
		{name: "empty array", input: `[]`, expected: mangadex.LocalizedString{}},
		{name: "array of objects", input: `[{"en":"Hello"},{"fr":"Bonjour"}]`, expected: mangadex.LocalizedString{"en": "Hello", "fr": "Bonjour"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var got mangadex.LocalizedString

			require.NoError(t, json.Unmarshal([]byte(testCase.input), &got))
			assert.Equal(t, testCase.expected, got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		var got mangadex.LocalizedString

		require.Error(t, json.Unmarshal([]byte(`"plain"`), &got))
	})

	t.Run("get falls back to english", func(t *testing.T) {
		t.Parallel()

		text := mangadex.LocalizedString{"en": "Hello", "fr": "Bonjour"}
		assert.Equal(t, "Bonjour", text.Get(mangadex.LanguageFrench))
		assert.Equal(t, "Hello", text.Get(mangadex.LanguageGerman))
	})
}

func TestListChapterQuery(t *testing.T) {
	t.Parallel()

	first := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	second := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	manga := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	req, err := mangadex.NewListChapterBuilder(&fakeHandle{}).
		Limit(1).
		AddID(first).
		AddID(second).
		Manga(manga).
		AddTranslatedLanguage(mangadex.LanguageEnglish).
		IncludeFutureUpdates(mangadex.IncludeFlagInclude).
		CreatedAtSince(mangadex.NewDateTime(time.Date(2021, 5, 1, 10, 0, 0, 0, time.UTC))).
		Order(mangadex.ChapterSortOrder{Chapter: mangadex.OrderDescending}).
		Include(mangadex.IncludeScanlationGroup).
		Build()
	require.NoError(t, err)

	values, err := query.Values(req.Query())
	require.NoError(t, err)

	assert.Equal(t, "1", values.Get("limit"))
	assert.Empty(t, values.Get("offset"))
	assert.Equal(t, []string{first.String(), second.String()}, values["ids[]"])
	assert.Equal(t, manga.String(), values.Get("manga"))
	assert.Equal(t, []string{"en"}, values["translatedLanguage[]"])
	assert.Equal(t, "1", values.Get("includeFutureUpdates"))
	assert.Equal(t, "2021-05-01T10:00:00", values.Get("createdAtSince"))
	assert.Equal(t, "desc", values.Get("order[chapter]"))
	assert.NotContains(t, values, "order[createdAt]")
	assert.Equal(t, []string{"scanlation_group"}, values["includes[]"])
	assert.NotContains(t, values, "updatedAtSince")
}

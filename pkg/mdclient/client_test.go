package mdclient_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/fivetwenty-io/mangadex-client/pkg/mdclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := mdclient.New(&mangadex.Config{BaseURL: "https://api.example.com"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := mdclient.New(nil)
		require.ErrorIs(t, err, mangadex.ErrConfigRequired)
	})

	t.Run("unparsable base URL", func(t *testing.T) {
		t.Parallel()

		_, err := mdclient.New(&mangadex.Config{BaseURL: "://nope"})
		require.ErrorIs(t, err, mangadex.ErrInvalidBaseURL)
	})

	t.Run("relative base URL", func(t *testing.T) {
		t.Parallel()

		_, err := mdclient.New(&mangadex.Config{BaseURL: "api.mangadex.org"})
		require.ErrorIs(t, err, mangadex.ErrInvalidBaseURL)
	})
}

func TestNewDefault(t *testing.T) {
	t.Parallel()

	client, err := mdclient.NewDefault()
	require.NoError(t, err)

	tokens, err := client.AuthTokens(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tokens)

	_, ok, err := client.Captcha(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewDev(t *testing.T) {
	t.Parallel()

	client, err := mdclient.NewDev()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithHTTPClient(t *testing.T) {
	t.Parallel()

	client, err := mdclient.NewWithHTTPClient(&http.Client{})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithTokens(t *testing.T) {
	t.Parallel()

	client, err := mdclient.NewWithTokens(mangadex.AuthTokens{Session: "s", Refresh: "r"})
	require.NoError(t, err)

	tokens, err := client.AuthTokens(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.Equal(t, "s", tokens.Session)
	assert.Equal(t, "r", tokens.Refresh)
}

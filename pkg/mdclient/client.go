package mdclient

import (
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/mangadex-client/internal/client"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
)

// New creates a new MangaDex API client from config.
func New(config *mangadex.Config) (mangadex.Client, error) {
	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewDefault creates a client for the production API.
func NewDefault() (mangadex.Client, error) {
	return New(&mangadex.Config{})
}

// NewDev creates a client for the development sandbox.
func NewDev() (mangadex.Client, error) {
	return New(&mangadex.Config{Dev: true})
}

// NewWithHTTPClient creates a production client on top of httpClient.
func NewWithHTTPClient(httpClient *http.Client) (mangadex.Client, error) {
	return New(&mangadex.Config{HTTPClient: httpClient})
}

// NewWithTokens creates a production client that starts logged in.
func NewWithTokens(tokens mangadex.AuthTokens) (mangadex.Client, error) {
	return New(&mangadex.Config{AuthTokens: &tokens})
}

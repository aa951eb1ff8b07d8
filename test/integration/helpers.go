//go:build integration

package integration

import (
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/fivetwenty-io/mangadex-client/pkg/mdclient"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BaseURL  string
	Username string
	Password string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	baseURL := os.Getenv("MANGADEX_INTEGRATION_API")
	if baseURL == "" {
		baseURL = "https://api.mangadex.dev"
	}

	return &TestConfig{
		BaseURL:  baseURL,
		Username: os.Getenv("MANGADEX_INTEGRATION_USERNAME"),
		Password: os.Getenv("MANGADEX_INTEGRATION_PASSWORD"),
		Verbose:  os.Getenv("MANGADEX_VERBOSE") == "true",
	}
}

// SkipIfNoCredentials skips tests that need an account
func (config *TestConfig) SkipIfNoCredentials(t *testing.T) {
	t.Helper()

	if config.Username == "" || config.Password == "" {
		t.Skip("MANGADEX_INTEGRATION_USERNAME/PASSWORD not set, skipping integration test")
	}
}

// NewClient creates a client for the configured API
func (config *TestConfig) NewClient(t *testing.T, mode mangadex.Mode) mangadex.Client {
	t.Helper()

	client, err := mdclient.New(&mangadex.Config{
		BaseURL:     config.BaseURL,
		HTTPTimeout: 30 * time.Second,
		Mode:        mode,
	})
	require.NoError(t, err)

	return client
}

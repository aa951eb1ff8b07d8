package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
)

// ConfigPersister writes the client's session tokens back to the config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// SaveTokens stores the tokens currently held by client, or removes the stored
// ones when the client is logged out.
func (p *ConfigPersister) SaveTokens(ctx context.Context, client mangadex.Handle) error {
	tokens, err := client.AuthTokens(ctx)
	if err != nil {
		return fmt.Errorf("reading auth tokens: %w", err)
	}

	return p.UpdateTokens(tokens)
}

// UpdateTokens stores tokens in the config. A nil value clears them.
func (p *ConfigPersister) UpdateTokens(tokens *mangadex.AuthTokens) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()

	if tokens == nil {
		config.SessionToken = ""
		config.RefreshToken = ""
	} else {
		config.SessionToken = tokens.Session
		config.RefreshToken = tokens.Refresh
	}

	return saveConfigStruct(config)
}

// UpdateCaptcha stores a solved captcha token in the config.
func (p *ConfigPersister) UpdateCaptcha(token string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.Captcha = token

	return saveConfigStruct(config)
}

package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/internal/http"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
)

// Client implements the mangadex.Client interface.
type Client struct {
	cell    cell
	mode    mangadex.Mode
	baseURL *url.URL

	// Resource clients
	auth            mangadex.AuthClient
	captcha         mangadex.CaptchaClient
	chapter         mangadex.ChapterClient
	manga           mangadex.MangaClient
	user            mangadex.UserClient
	scanlationGroup mangadex.ScanlationGroupClient
	author          mangadex.AuthorClient
	customList      mangadex.CustomListClient
	cover           mangadex.CoverClient
	legacy          mangadex.LegacyClient
	statistics      mangadex.StatisticsClient
}

// New creates a new MangaDex API client. The base URL is validated here so a
// bad configuration never reaches the first request.
func New(config *mangadex.Config) (*Client, error) {
	if config == nil {
		return nil, mangadex.ErrConfigRequired
	}

	baseURL, err := resolveBaseURL(config)
	if err != nil {
		return nil, err
	}

	opts := []http.Option{
		http.WithLogger(config.Logger),
		http.WithDebug(config.Debug),
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	} else {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	st := &state{transport: http.NewClient(baseURL, opts...)}

	if config.AuthTokens != nil {
		tokens := *config.AuthTokens
		st.authTokens = &tokens
	}

	if config.Captcha != "" {
		captcha := config.Captcha
		st.captcha = &captcha
	}

	client := &Client{
		cell:    newCell(config.Mode, st),
		mode:    config.Mode,
		baseURL: baseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

func resolveBaseURL(config *mangadex.Config) (*url.URL, error) {
	raw := config.BaseURL
	if raw == "" {
		raw = constants.ProductionBaseURL
		if config.Dev {
			raw = constants.DevBaseURL
		}
	}

	baseURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mangadex.ErrInvalidBaseURL, err)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", mangadex.ErrInvalidBaseURL, raw)
	}

	return baseURL, nil
}

func (c *Client) initializeResourceClients() {
	c.auth = NewAuthClient(c)
	c.captcha = NewCaptchaClient(c)
	c.chapter = NewChapterClient(c)
	c.manga = NewMangaClient(c)
	c.user = NewUserClient(c)
	c.scanlationGroup = NewScanlationGroupClient(c)
	c.author = NewAuthorClient(c)
	c.customList = NewCustomListClient(c)
	c.cover = NewCoverClient(c)
	c.legacy = NewLegacyClient(c)
	c.statistics = NewStatisticsClient(c)
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Mode returns how the client state is guarded.
func (c *Client) Mode() mangadex.Mode {
	return c.mode
}

// SendRaw implements mangadex.Handle.SendRaw.
func (c *Client) SendRaw(ctx context.Context, e mangadex.Endpoint) (*mangadex.RawResponse, error) {
	st, release, err := c.cell.borrow(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return st.sendRaw(ctx, e)
}

// Send implements mangadex.Handle.Send.
func (c *Client) Send(ctx context.Context, e mangadex.Endpoint, out any) error {
	st, release, err := c.cell.borrow(ctx)
	if err != nil {
		return err
	}
	defer release()

	return st.send(ctx, e, out)
}

// SetAuthTokens implements mangadex.Handle.SetAuthTokens.
func (c *Client) SetAuthTokens(ctx context.Context, tokens mangadex.AuthTokens) error {
	st, release, err := c.cell.borrow(ctx)
	if err != nil {
		return err
	}
	defer release()

	st.authTokens = &tokens

	return nil
}

// ClearAuthTokens implements mangadex.Handle.ClearAuthTokens.
func (c *Client) ClearAuthTokens(ctx context.Context) error {
	st, release, err := c.cell.borrow(ctx)
	if err != nil {
		return err
	}
	defer release()

	st.authTokens = nil

	return nil
}

// AuthTokens implements mangadex.Handle.AuthTokens. It returns a copy, or nil
// when logged out.
func (c *Client) AuthTokens(ctx context.Context) (*mangadex.AuthTokens, error) {
	st, release, err := c.cell.borrow(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if st.authTokens == nil {
		return nil, nil
	}

	tokens := *st.authTokens

	return &tokens, nil
}

// SetCaptcha implements mangadex.Handle.SetCaptcha.
func (c *Client) SetCaptcha(ctx context.Context, token string) error {
	st, release, err := c.cell.borrow(ctx)
	if err != nil {
		return err
	}
	defer release()

	st.captcha = &token

	return nil
}

// ClearCaptcha implements mangadex.Handle.ClearCaptcha.
func (c *Client) ClearCaptcha(ctx context.Context) error {
	st, release, err := c.cell.borrow(ctx)
	if err != nil {
		return err
	}
	defer release()

	st.captcha = nil

	return nil
}

// Captcha implements mangadex.Handle.Captcha.
func (c *Client) Captcha(ctx context.Context) (string, bool, error) {
	st, release, err := c.cell.borrow(ctx)
	if err != nil {
		return "", false, err
	}
	defer release()

	if st.captcha == nil {
		return "", false, nil
	}

	return *st.captcha, true, nil
}

// Auth implements mangadex.Client.Auth.
func (c *Client) Auth() mangadex.AuthClient {
	return c.auth
}

// Captchas implements mangadex.Client.Captchas.
func (c *Client) Captchas() mangadex.CaptchaClient {
	return c.captcha
}

// Chapter implements mangadex.Client.Chapter.
func (c *Client) Chapter() mangadex.ChapterClient {
	return c.chapter
}

// Manga implements mangadex.Client.Manga.
func (c *Client) Manga() mangadex.MangaClient {
	return c.manga
}

// User implements mangadex.Client.User.
func (c *Client) User() mangadex.UserClient {
	return c.user
}

// ScanlationGroup implements mangadex.Client.ScanlationGroup.
func (c *Client) ScanlationGroup() mangadex.ScanlationGroupClient {
	return c.scanlationGroup
}

// Author implements mangadex.Client.Author.
func (c *Client) Author() mangadex.AuthorClient {
	return c.author
}

// CustomList implements mangadex.Client.CustomList.
func (c *Client) CustomList() mangadex.CustomListClient {
	return c.customList
}

// Cover implements mangadex.Client.Cover.
func (c *Client) Cover() mangadex.CoverClient {
	return c.cover
}

// Legacy implements mangadex.Client.Legacy.
func (c *Client) Legacy() mangadex.LegacyClient {
	return c.legacy
}

// Statistics implements mangadex.Client.Statistics.
func (c *Client) Statistics() mangadex.StatisticsClient {
	return c.statistics
}

package mangadex

import (
	"context"
	"fmt"
)

// Login is POST /auth/login. A successful login stores the issued tokens on
// the handle.
type Login struct {
	handle Handle

	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

func (r *Login) Method() string        { return methodPost }
func (r *Login) Path() string          { return "/auth/login" }
func (r *Login) Query() any            { return nil }
func (r *Login) Body() any             { return r }
func (r *Login) Multipart() *Multipart { return nil }
func (r *Login) RequireAuth() bool     { return false }

// Send logs in and keeps the session on the handle.
func (r *Login) Send(ctx context.Context) (*LoginResponse, error) {
	resp, err := send[LoginResponse](ctx, r.handle, r)
	if err != nil {
		return nil, err
	}

	if err := r.handle.SetAuthTokens(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("storing auth tokens: %w", err)
	}

	return resp, nil
}

// LoginBuilder builds a Login.
type LoginBuilder struct {
	builderBase
	username string
	email    string
	password *string
}

// NewLoginBuilder returns a builder bound to h.
func NewLoginBuilder(h Handle) *LoginBuilder {
	return &LoginBuilder{builderBase: builderBase{handle: h}}
}

func (b *LoginBuilder) Username(username string) *LoginBuilder {
	b.username = username

	return b
}

func (b *LoginBuilder) Email(email string) *LoginBuilder {
	b.email = email

	return b
}

func (b *LoginBuilder) Password(password string) *LoginBuilder {
	b.password = &password

	return b
}

// Build validates required fields and returns the request.
func (b *LoginBuilder) Build() (*Login, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if b.username == "" && b.email == "" {
		return nil, &UninitializedFieldError{Field: "username"}
	}

	if b.password == nil {
		return nil, &UninitializedFieldError{Field: "password"}
	}

	return &Login{handle: b.handle, Username: b.username, Email: b.email, Password: *b.password}, nil
}

// Logout is POST /auth/logout. A successful logout clears the handle's tokens.
type Logout struct {
	noPayload
	handle Handle
}

func (r *Logout) Method() string    { return methodPost }
func (r *Logout) Path() string      { return "/auth/logout" }
func (r *Logout) RequireAuth() bool { return true }

// Send ends the session.
func (r *Logout) Send(ctx context.Context) (*NoDataResponse, error) {
	resp, err := send[NoDataResponse](ctx, r.handle, r)
	if err != nil {
		return nil, err
	}

	if err := r.handle.ClearAuthTokens(ctx); err != nil {
		return nil, fmt.Errorf("clearing auth tokens: %w", err)
	}

	return resp, nil
}

// LogoutBuilder builds a Logout.
type LogoutBuilder struct {
	builderBase
}

// NewLogoutBuilder returns a builder bound to h.
func NewLogoutBuilder(h Handle) *LogoutBuilder {
	return &LogoutBuilder{builderBase: builderBase{handle: h}}
}

// Build returns the request.
func (b *LogoutBuilder) Build() (*Logout, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	return &Logout{handle: b.handle}, nil
}

// RefreshToken is POST /auth/refresh. When Token is empty the handle's stored
// refresh token is used. The new pair replaces the stored one.
type RefreshToken struct {
	handle Handle

	Token string `json:"token"`
}

func (r *RefreshToken) Method() string        { return methodPost }
func (r *RefreshToken) Path() string          { return "/auth/refresh" }
func (r *RefreshToken) Query() any            { return nil }
func (r *RefreshToken) Body() any             { return r }
func (r *RefreshToken) Multipart() *Multipart { return nil }
func (r *RefreshToken) RequireAuth() bool     { return false }

// Send exchanges the refresh token for a new pair.
func (r *RefreshToken) Send(ctx context.Context) (*RefreshTokenResponse, error) {
	req := *r

	if req.Token == "" {
		tokens, err := r.handle.AuthTokens(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading auth tokens: %w", err)
		}

		if tokens == nil || tokens.Refresh == "" {
			return nil, ErrMissingRefreshToken
		}

		req.Token = tokens.Refresh
	}

	resp, err := send[RefreshTokenResponse](ctx, r.handle, &req)
	if err != nil {
		return nil, err
	}

	if err := r.handle.SetAuthTokens(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("storing auth tokens: %w", err)
	}

	return resp, nil
}

// RefreshTokenBuilder builds a RefreshToken.
type RefreshTokenBuilder struct {
	builderBase
	token string
}

// NewRefreshTokenBuilder returns a builder bound to h.
func NewRefreshTokenBuilder(h Handle) *RefreshTokenBuilder {
	return &RefreshTokenBuilder{builderBase: builderBase{handle: h}}
}

func (b *RefreshTokenBuilder) Token(token string) *RefreshTokenBuilder {
	b.token = token

	return b
}

// Build returns the request.
func (b *RefreshTokenBuilder) Build() (*RefreshToken, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	return &RefreshToken{handle: b.handle, Token: b.token}, nil
}

// CheckToken is GET /auth/check.
type CheckToken struct {
	noPayload
	handle Handle
}

func (r *CheckToken) Method() string    { return methodGet }
func (r *CheckToken) Path() string      { return "/auth/check" }
func (r *CheckToken) RequireAuth() bool { return true }

// Send describes the current session.
func (r *CheckToken) Send(ctx context.Context) (*CheckTokenResponse, error) {
	return send[CheckTokenResponse](ctx, r.handle, r)
}

// CheckTokenBuilder builds a CheckToken.
type CheckTokenBuilder struct {
	builderBase
}

// NewCheckTokenBuilder returns a builder bound to h.
func NewCheckTokenBuilder(h Handle) *CheckTokenBuilder {
	return &CheckTokenBuilder{builderBase: builderBase{handle: h}}
}

// Build returns the request.
func (b *CheckTokenBuilder) Build() (*CheckToken, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	return &CheckToken{handle: b.handle}, nil
}

package mangadex

import "context"

// SolveCaptcha is POST /captcha/solve.
type SolveCaptcha struct {
	handle Handle

	CaptchaChallenge string `json:"captchaChallenge"`
}

func (r *SolveCaptcha) Method() string        { return methodPost }
func (r *SolveCaptcha) Path() string          { return "/captcha/solve" }
func (r *SolveCaptcha) Query() any            { return nil }
func (r *SolveCaptcha) Body() any             { return r }
func (r *SolveCaptcha) Multipart() *Multipart { return nil }
func (r *SolveCaptcha) RequireAuth() bool     { return false }

// Send submits the challenge answer.
func (r *SolveCaptcha) Send(ctx context.Context) (*NoDataResponse, error) {
	return send[NoDataResponse](ctx, r.handle, r)
}

// SolveCaptchaBuilder builds a SolveCaptcha.
type SolveCaptchaBuilder struct {
	builderBase
	challenge *string
}

// NewSolveCaptchaBuilder returns a builder bound to h.
func NewSolveCaptchaBuilder(h Handle) *SolveCaptchaBuilder {
	return &SolveCaptchaBuilder{builderBase: builderBase{handle: h}}
}

func (b *SolveCaptchaBuilder) CaptchaChallenge(challenge string) *SolveCaptchaBuilder {
	b.challenge = &challenge

	return b
}

// Build validates required fields and returns the request.
func (b *SolveCaptchaBuilder) Build() (*SolveCaptcha, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if b.challenge == nil {
		return nil, &UninitializedFieldError{Field: "captcha_challenge"}
	}

	return &SolveCaptcha{handle: b.handle, CaptchaChallenge: *b.challenge}, nil
}

package mangadex

import (
	"context"

	"github.com/google/uuid"
)

// GetMe is GET /user/me.
type GetMe struct {
	noPayload
	handle Handle
}

func (r *GetMe) Method() string    { return methodGet }
func (r *GetMe) Path() string      { return "/user/me" }
func (r *GetMe) RequireAuth() bool { return true }

// Send fetches the logged-in user.
func (r *GetMe) Send(ctx context.Context) (*UserResponse, error) {
	return send[UserResponse](ctx, r.handle, r)
}

// GetMeBuilder builds a GetMe.
type GetMeBuilder struct {
	builderBase
}

// NewGetMeBuilder returns a builder bound to h.
func NewGetMeBuilder(h Handle) *GetMeBuilder {
	return &GetMeBuilder{builderBase: builderBase{handle: h}}
}

// Build returns the request.
func (b *GetMeBuilder) Build() (*GetMe, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	return &GetMe{handle: b.handle}, nil
}

// FollowTarget is the kind of resource a follow check asks about.
type FollowTarget string

const (
	FollowTargetGroup FollowTarget = "group"
	FollowTargetUser  FollowTarget = "user"
	FollowTargetManga FollowTarget = "manga"
	FollowTargetList  FollowTarget = "list"
)

// IsFollowing is GET /user/follows/{target}/{id}. The answer is carried by the
// response status, not by the body.
type IsFollowing struct {
	noPayload
	handle Handle

	Target FollowTarget
	ID     uuid.UUID
}

func (r *IsFollowing) Method() string    { return methodGet }
func (r *IsFollowing) Path() string      { return "/user/follows/" + string(r.Target) + "/" + r.ID.String() }
func (r *IsFollowing) RequireAuth() bool { return true }

// Send reports whether the logged-in user follows the resource.
func (r *IsFollowing) Send(ctx context.Context) (bool, error) {
	return sendFollowCheck(ctx, r.handle, r)
}

// IsFollowingBuilder builds an IsFollowing for a fixed target kind.
type IsFollowingBuilder struct {
	builderBase
	target FollowTarget
	field  string
	id     *uuid.UUID
}

// NewIsFollowingGroupBuilder returns a builder for GET /user/follows/group/{id}.
func NewIsFollowingGroupBuilder(h Handle) *IsFollowingBuilder {
	return newIsFollowingBuilder(h, FollowTargetGroup, "group_id")
}

// NewIsFollowingUserBuilder returns a builder for GET /user/follows/user/{id}.
func NewIsFollowingUserBuilder(h Handle) *IsFollowingBuilder {
	return newIsFollowingBuilder(h, FollowTargetUser, "user_id")
}

// NewIsFollowingMangaBuilder returns a builder for GET /user/follows/manga/{id}.
func NewIsFollowingMangaBuilder(h Handle) *IsFollowingBuilder {
	return newIsFollowingBuilder(h, FollowTargetManga, "manga_id")
}

// NewIsFollowingListBuilder returns a builder for GET /user/follows/list/{id}.
func NewIsFollowingListBuilder(h Handle) *IsFollowingBuilder {
	return newIsFollowingBuilder(h, FollowTargetList, "list_id")
}

func newIsFollowingBuilder(h Handle, target FollowTarget, field string) *IsFollowingBuilder {
	return &IsFollowingBuilder{builderBase: builderBase{handle: h}, target: target, field: field}
}

// ID sets the followed resource.
func (b *IsFollowingBuilder) ID(id uuid.UUID) *IsFollowingBuilder {
	b.id = &id

	return b
}

// Build validates required fields and returns the request.
func (b *IsFollowingBuilder) Build() (*IsFollowing, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if err := requireID(b.field, b.id); err != nil {
		return nil, err
	}

	return &IsFollowing{handle: b.handle, Target: b.target, ID: *b.id}, nil
}

package mangadex

import (
	"context"

	"github.com/google/uuid"
)

// GetAuthor is GET /author/{id}.
type GetAuthor struct {
	handle Handle

	AuthorID uuid.UUID                    `url:"-"`
	Includes []ReferenceExpansionResource `url:"includes,brackets,omitempty"`
}

func (r *GetAuthor) Method() string        { return methodGet }
func (r *GetAuthor) Path() string          { return idPath("/author/%s", r.AuthorID) }
func (r *GetAuthor) Query() any            { return r }
func (r *GetAuthor) Body() any             { return nil }
func (r *GetAuthor) Multipart() *Multipart { return nil }
func (r *GetAuthor) RequireAuth() bool     { return false }

// Send fetches the author.
func (r *GetAuthor) Send(ctx context.Context) (*AuthorResponse, error) {
	return send[AuthorResponse](ctx, r.handle, r)
}

// GetAuthorBuilder builds a GetAuthor.
type GetAuthorBuilder struct {
	builderBase
	authorID *uuid.UUID
	includes []ReferenceExpansionResource
}

// NewGetAuthorBuilder returns a builder bound to h.
func NewGetAuthorBuilder(h Handle) *GetAuthorBuilder {
	return &GetAuthorBuilder{builderBase: builderBase{handle: h}}
}

func (b *GetAuthorBuilder) AuthorID(id uuid.UUID) *GetAuthorBuilder {
	b.authorID = &id

	return b
}

func (b *GetAuthorBuilder) Include(resource ReferenceExpansionResource) *GetAuthorBuilder {
	b.includes = append(b.includes, resource)

	return b
}

// Build validates required fields and returns the request.
func (b *GetAuthorBuilder) Build() (*GetAuthor, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if err := requireID("author_id", b.authorID); err != nil {
		return nil, err
	}

	return &GetAuthor{handle: b.handle, AuthorID: *b.authorID, Includes: b.includes}, nil
}

package mangadex

import (
	"context"

	"github.com/google/uuid"
)

// CreateCustomList is POST /list.
type CreateCustomList struct {
	handle Handle

	Name       string               `json:"name"`
	Visibility CustomListVisibility `json:"visibility,omitempty"`
	Manga      []uuid.UUID          `json:"manga,omitempty"`
	Version    *int                 `json:"version,omitempty"`
}

func (r *CreateCustomList) Method() string        { return methodPost }
func (r *CreateCustomList) Path() string          { return "/list" }
func (r *CreateCustomList) Query() any            { return nil }
func (r *CreateCustomList) Body() any             { return r }
func (r *CreateCustomList) Multipart() *Multipart { return nil }
func (r *CreateCustomList) RequireAuth() bool     { return true }

// Send creates the list.
func (r *CreateCustomList) Send(ctx context.Context) (*CustomListResponse, error) {
	return send[CustomListResponse](ctx, r.handle, r)
}

// CreateCustomListBuilder builds a CreateCustomList.
type CreateCustomListBuilder struct {
	builderBase
	name       *string
	visibility CustomListVisibility
	manga      []uuid.UUID
	version    *int
}

// NewCreateCustomListBuilder returns a builder bound to h.
func NewCreateCustomListBuilder(h Handle) *CreateCustomListBuilder {
	return &CreateCustomListBuilder{builderBase: builderBase{handle: h}}
}

func (b *CreateCustomListBuilder) Name(name string) *CreateCustomListBuilder {
	b.name = &name

	return b
}

func (b *CreateCustomListBuilder) Visibility(v CustomListVisibility) *CreateCustomListBuilder {
	b.visibility = v

	return b
}

func (b *CreateCustomListBuilder) AddManga(id uuid.UUID) *CreateCustomListBuilder {
	b.manga = append(b.manga, id)

	return b
}

func (b *CreateCustomListBuilder) Version(v int) *CreateCustomListBuilder {
	b.version = &v

	return b
}

// Build validates required fields and returns the request.
func (b *CreateCustomListBuilder) Build() (*CreateCustomList, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if b.name == nil {
		return nil, &UninitializedFieldError{Field: "name"}
	}

	return &CreateCustomList{
		handle:     b.handle,
		Name:       *b.name,
		Visibility: b.visibility,
		Manga:      b.manga,
		Version:    b.version,
	}, nil
}

package mangadex

import (
	"context"

	"github.com/google/uuid"
)

// MangaReadingStatuses is GET /manga/status: the reading status of every
// manga in the user's library, optionally filtered by status.
type MangaReadingStatuses struct {
	handle Handle

	Status ReadingStatus `url:"status,omitempty"`
}

func (r *MangaReadingStatuses) Method() string        { return methodGet }
func (r *MangaReadingStatuses) Path() string          { return "/manga/status" }
func (r *MangaReadingStatuses) Query() any            { return r }
func (r *MangaReadingStatuses) Body() any             { return nil }
func (r *MangaReadingStatuses) Multipart() *Multipart { return nil }
func (r *MangaReadingStatuses) RequireAuth() bool     { return true }

// Send fetches the statuses.
func (r *MangaReadingStatuses) Send(ctx context.Context) (*ReadingStatusesResponse, error) {
	return send[ReadingStatusesResponse](ctx, r.handle, r)
}

// MangaReadingStatusesBuilder builds a MangaReadingStatuses.
type MangaReadingStatusesBuilder struct {
	builderBase
	status ReadingStatus
}

// NewMangaReadingStatusesBuilder returns a builder bound to h.
func NewMangaReadingStatusesBuilder(h Handle) *MangaReadingStatusesBuilder {
	return &MangaReadingStatusesBuilder{builderBase: builderBase{handle: h}}
}

func (b *MangaReadingStatusesBuilder) Status(status ReadingStatus) *MangaReadingStatusesBuilder {
	b.status = status

	return b
}

// Build returns the request.
func (b *MangaReadingStatusesBuilder) Build() (*MangaReadingStatuses, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	return &MangaReadingStatuses{handle: b.handle, Status: b.status}, nil
}

// MangaReadingStatus is GET /manga/{id}/status.
type MangaReadingStatus struct {
	noPayload
	handle Handle

	MangaID uuid.UUID
}

func (r *MangaReadingStatus) Method() string    { return methodGet }
func (r *MangaReadingStatus) Path() string      { return idPath("/manga/%s/status", r.MangaID) }
func (r *MangaReadingStatus) RequireAuth() bool { return true }

// Send fetches the status.
func (r *MangaReadingStatus) Send(ctx context.Context) (*ReadingStatusResponse, error) {
	return send[ReadingStatusResponse](ctx, r.handle, r)
}

// MangaReadingStatusBuilder builds a MangaReadingStatus.
type MangaReadingStatusBuilder struct {
	builderBase
	mangaID *uuid.UUID
}

// NewMangaReadingStatusBuilder returns a builder bound to h.
func NewMangaReadingStatusBuilder(h Handle) *MangaReadingStatusBuilder {
	return &MangaReadingStatusBuilder{builderBase: builderBase{handle: h}}
}

func (b *MangaReadingStatusBuilder) MangaID(id uuid.UUID) *MangaReadingStatusBuilder {
	b.mangaID = &id

	return b
}

// Build validates required fields and returns the request.
func (b *MangaReadingStatusBuilder) Build() (*MangaReadingStatus, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if err := requireID("manga_id", b.mangaID); err != nil {
		return nil, err
	}

	return &MangaReadingStatus{handle: b.handle, MangaID: *b.mangaID}, nil
}

// UpdateMangaReadingStatus is POST /manga/{id}/status. A nil Status removes
// the manga from the library.
type UpdateMangaReadingStatus struct {
	handle Handle

	MangaID uuid.UUID      `json:"-"`
	Status  *ReadingStatus `json:"status"`
}

func (r *UpdateMangaReadingStatus) Method() string        { return methodPost }
func (r *UpdateMangaReadingStatus) Path() string          { return idPath("/manga/%s/status", r.MangaID) }
func (r *UpdateMangaReadingStatus) Query() any            { return nil }
func (r *UpdateMangaReadingStatus) Body() any             { return r }
func (r *UpdateMangaReadingStatus) Multipart() *Multipart { return nil }
func (r *UpdateMangaReadingStatus) RequireAuth() bool     { return true }

// Send updates the status.
func (r *UpdateMangaReadingStatus) Send(ctx context.Context) (*NoDataResponse, error) {
	return send[NoDataResponse](ctx, r.handle, r)
}

// UpdateMangaReadingStatusBuilder builds an UpdateMangaReadingStatus.
type UpdateMangaReadingStatusBuilder struct {
	builderBase
	mangaID *uuid.UUID
	status  *ReadingStatus
}

// NewUpdateMangaReadingStatusBuilder returns a builder bound to h.
func NewUpdateMangaReadingStatusBuilder(h Handle) *UpdateMangaReadingStatusBuilder {
	return &UpdateMangaReadingStatusBuilder{builderBase: builderBase{handle: h}}
}

func (b *UpdateMangaReadingStatusBuilder) MangaID(id uuid.UUID) *UpdateMangaReadingStatusBuilder {
	b.mangaID = &id

	return b
}

func (b *UpdateMangaReadingStatusBuilder) Status(status ReadingStatus) *UpdateMangaReadingStatusBuilder {
	b.status = &status

	return b
}

// ClearStatus removes the manga from the library when sent.
func (b *UpdateMangaReadingStatusBuilder) ClearStatus() *UpdateMangaReadingStatusBuilder {
	b.status = nil

	return b
}

// Build validates required fields and returns the request.
func (b *UpdateMangaReadingStatusBuilder) Build() (*UpdateMangaReadingStatus, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if err := requireID("manga_id", b.mangaID); err != nil {
		return nil, err
	}

	return &UpdateMangaReadingStatus{handle: b.handle, MangaID: *b.mangaID, Status: b.status}, nil
}

// ListTags is GET /manga/tag.
type ListTags struct {
	noPayload
	handle Handle
}

func (r *ListTags) Method() string    { return methodGet }
func (r *ListTags) Path() string      { return "/manga/tag" }
func (r *ListTags) RequireAuth() bool { return false }

// Send lists every tag.
func (r *ListTags) Send(ctx context.Context) (*TagCollection, error) {
	return send[TagCollection](ctx, r.handle, r)
}

// ListTagsBuilder builds a ListTags.
type ListTagsBuilder struct {
	builderBase
}

// NewListTagsBuilder returns a builder bound to h.
func NewListTagsBuilder(h Handle) *ListTagsBuilder {
	return &ListTagsBuilder{builderBase: builderBase{handle: h}}
}

// Build returns the request.
func (b *ListTagsBuilder) Build() (*ListTags, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	return &ListTags{handle: b.handle}, nil
}

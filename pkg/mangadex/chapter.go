package mangadex

import (
	"context"

	"github.com/google/uuid"
)

// ChapterSortOrder orders chapter listings. Unset fields are left out.
type ChapterSortOrder struct {
	CreatedAt  OrderDirection `url:"createdAt,omitempty"  json:"createdAt,omitempty"`
	UpdatedAt  OrderDirection `url:"updatedAt,omitempty"  json:"updatedAt,omitempty"`
	PublishAt  OrderDirection `url:"publishAt,omitempty"  json:"publishAt,omitempty"`
	ReadableAt OrderDirection `url:"readableAt,omitempty" json:"readableAt,omitempty"`
	Volume     OrderDirection `url:"volume,omitempty"     json:"volume,omitempty"`
	Chapter    OrderDirection `url:"chapter,omitempty"    json:"chapter,omitempty"`
}

// ListChapter is GET /chapter.
type ListChapter struct {
	handle Handle

	Limit                    *int                         `url:"limit,omitempty"`
	Offset                   *int                         `url:"offset,omitempty"`
	IDs                      []uuid.UUID                  `url:"ids,brackets,omitempty"`
	Title                    string                       `url:"title,omitempty"`
	Groups                   []uuid.UUID                  `url:"groups,brackets,omitempty"`
	Uploader                 []uuid.UUID                  `url:"uploader,brackets,omitempty"`
	Manga                    string                       `url:"manga,omitempty"`
	Volumes                  []string                     `url:"volume,brackets,omitempty"`
	Chapters                 []string                     `url:"chapter,brackets,omitempty"`
	TranslatedLanguage       []Language                   `url:"translatedLanguage,brackets,omitempty"`
	OriginalLanguage         []Language                   `url:"originalLanguage,brackets,omitempty"`
	ExcludedOriginalLanguage []Language                   `url:"excludedOriginalLanguage,brackets,omitempty"`
	ContentRating            []ContentRating              `url:"contentRating,brackets,omitempty"`
	ExcludedGroups           []uuid.UUID                  `url:"excludedGroups,brackets,omitempty"`
	ExcludedUploaders        []uuid.UUID                  `url:"excludedUploaders,brackets,omitempty"`
	IncludeFutureUpdates     IncludeFlag                  `url:"includeFutureUpdates,omitempty"`
	IncludeEmptyPages        IncludeFlag                  `url:"includeEmptyPages,omitempty"`
	IncludeFuturePublishAt   IncludeFlag                  `url:"includeFuturePublishAt,omitempty"`
	IncludeExternalURL       IncludeFlag                  `url:"includeExternalUrl,omitempty"`
	CreatedAtSince           *DateTime                    `url:"createdAtSince,omitempty"`
	UpdatedAtSince           *DateTime                    `url:"updatedAtSince,omitempty"`
	PublishAtSince           *DateTime                    `url:"publishAtSince,omitempty"`
	Order                    *ChapterSortOrder            `url:"order,omitempty"`
	Includes                 []ReferenceExpansionResource `url:"includes,brackets,omitempty"`
}

func (r *ListChapter) Method() string        { return methodGet }
func (r *ListChapter) Path() string          { return "/chapter" }
func (r *ListChapter) Query() any            { return r }
func (r *ListChapter) Body() any             { return nil }
func (r *ListChapter) Multipart() *Multipart { return nil }
func (r *ListChapter) RequireAuth() bool     { return false }

// Send lists the chapters.
func (r *ListChapter) Send(ctx context.Context) (*ChapterCollection, error) {
	return send[ChapterCollection](ctx, r.handle, r)
}

// ListChapterBuilder builds a ListChapter.
type ListChapterBuilder struct {
	builderBase
	req ListChapter
}

// NewListChapterBuilder returns a builder bound to h.
func NewListChapterBuilder(h Handle) *ListChapterBuilder {
	return &ListChapterBuilder{builderBase: builderBase{handle: h}}
}

func (b *ListChapterBuilder) Limit(n int) *ListChapterBuilder {
	b.req.Limit = ptr(n)

	return b
}

func (b *ListChapterBuilder) Offset(n int) *ListChapterBuilder {
	b.req.Offset = ptr(n)

	return b
}

func (b *ListChapterBuilder) AddID(id uuid.UUID) *ListChapterBuilder {
	b.req.IDs = append(b.req.IDs, id)

	return b
}

func (b *ListChapterBuilder) Title(title string) *ListChapterBuilder {
	b.req.Title = title

	return b
}

func (b *ListChapterBuilder) AddGroup(id uuid.UUID) *ListChapterBuilder {
	b.req.Groups = append(b.req.Groups, id)

	return b
}

func (b *ListChapterBuilder) AddUploader(id uuid.UUID) *ListChapterBuilder {
	b.req.Uploader = append(b.req.Uploader, id)

	return b
}

func (b *ListChapterBuilder) Manga(id uuid.UUID) *ListChapterBuilder {
	b.req.Manga = id.String()

	return b
}

func (b *ListChapterBuilder) AddVolume(volume string) *ListChapterBuilder {
	b.req.Volumes = append(b.req.Volumes, volume)

	return b
}

func (b *ListChapterBuilder) AddChapter(chapter string) *ListChapterBuilder {
	b.req.Chapters = append(b.req.Chapters, chapter)

	return b
}

func (b *ListChapterBuilder) AddTranslatedLanguage(lang Language) *ListChapterBuilder {
	b.req.TranslatedLanguage = append(b.req.TranslatedLanguage, lang)

	return b
}

func (b *ListChapterBuilder) AddOriginalLanguage(lang Language) *ListChapterBuilder {
	b.req.OriginalLanguage = append(b.req.OriginalLanguage, lang)

	return b
}

func (b *ListChapterBuilder) AddExcludedOriginalLanguage(lang Language) *ListChapterBuilder {
	b.req.ExcludedOriginalLanguage = append(b.req.ExcludedOriginalLanguage, lang)

	return b
}

func (b *ListChapterBuilder) AddContentRating(rating ContentRating) *ListChapterBuilder {
	b.req.ContentRating = append(b.req.ContentRating, rating)

	return b
}

func (b *ListChapterBuilder) AddExcludedGroup(id uuid.UUID) *ListChapterBuilder {
	b.req.ExcludedGroups = append(b.req.ExcludedGroups, id)

	return b
}

func (b *ListChapterBuilder) AddExcludedUploader(id uuid.UUID) *ListChapterBuilder {
	b.req.ExcludedUploaders = append(b.req.ExcludedUploaders, id)

	return b
}

func (b *ListChapterBuilder) IncludeFutureUpdates(flag IncludeFlag) *ListChapterBuilder {
	b.req.IncludeFutureUpdates = flag

	return b
}

func (b *ListChapterBuilder) IncludeEmptyPages(flag IncludeFlag) *ListChapterBuilder {
	b.req.IncludeEmptyPages = flag

	return b
}

func (b *ListChapterBuilder) IncludeFuturePublishAt(flag IncludeFlag) *ListChapterBuilder {
	b.req.IncludeFuturePublishAt = flag

	return b
}

func (b *ListChapterBuilder) IncludeExternalURL(flag IncludeFlag) *ListChapterBuilder {
	b.req.IncludeExternalURL = flag

	return b
}

func (b *ListChapterBuilder) CreatedAtSince(t DateTime) *ListChapterBuilder {
	b.req.CreatedAtSince = &t

	return b
}

func (b *ListChapterBuilder) UpdatedAtSince(t DateTime) *ListChapterBuilder {
	b.req.UpdatedAtSince = &t

	return b
}

func (b *ListChapterBuilder) PublishAtSince(t DateTime) *ListChapterBuilder {
	b.req.PublishAtSince = &t

	return b
}

func (b *ListChapterBuilder) Order(order ChapterSortOrder) *ListChapterBuilder {
	b.req.Order = &order

	return b
}

func (b *ListChapterBuilder) Include(resource ReferenceExpansionResource) *ListChapterBuilder {
	b.req.Includes = append(b.req.Includes, resource)

	return b
}

// Build returns the request.
func (b *ListChapterBuilder) Build() (*ListChapter, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	req := b.req
	req.handle = b.handle

	return &req, nil
}

// GetChapter is GET /chapter/{id}.
type GetChapter struct {
	handle Handle

	ChapterID uuid.UUID                    `url:"-"`
	Includes  []ReferenceExpansionResource `url:"includes,brackets,omitempty"`
}

func (r *GetChapter) Method() string        { return methodGet }
func (r *GetChapter) Path() string          { return idPath("/chapter/%s", r.ChapterID) }
func (r *GetChapter) Query() any            { return r }
func (r *GetChapter) Body() any             { return nil }
func (r *GetChapter) Multipart() *Multipart { return nil }
func (r *GetChapter) RequireAuth() bool     { return false }

// Send fetches the chapter.
func (r *GetChapter) Send(ctx context.Context) (*ChapterResponse, error) {
	return send[ChapterResponse](ctx, r.handle, r)
}

// GetChapterBuilder builds a GetChapter.
type GetChapterBuilder struct {
	builderBase
	chapterID *uuid.UUID
	includes  []ReferenceExpansionResource
}

// NewGetChapterBuilder returns a builder bound to h.
func NewGetChapterBuilder(h Handle) *GetChapterBuilder {
	return &GetChapterBuilder{builderBase: builderBase{handle: h}}
}

func (b *GetChapterBuilder) ChapterID(id uuid.UUID) *GetChapterBuilder {
	b.chapterID = &id

	return b
}

func (b *GetChapterBuilder) Include(resource ReferenceExpansionResource) *GetChapterBuilder {
	b.includes = append(b.includes, resource)

	return b
}

// Build validates required fields and returns the request.
func (b *GetChapterBuilder) Build() (*GetChapter, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if err := requireID("chapter_id", b.chapterID); err != nil {
		return nil, err
	}

	return &GetChapter{handle: b.handle, ChapterID: *b.chapterID, Includes: b.includes}, nil
}

// DeleteChapter is DELETE /chapter/{id}.
type DeleteChapter struct {
	noPayload
	handle Handle

	ChapterID uuid.UUID
	// Version is the current chapter version, sent as a query parameter when set.
	Version *int
}

func (r *DeleteChapter) Method() string    { return methodDelete }
func (r *DeleteChapter) Path() string      { return idPath("/chapter/%s", r.ChapterID) }
func (r *DeleteChapter) RequireAuth() bool { return true }

// Query carries the optimistic-locking version when one was given.
func (r *DeleteChapter) Query() any {
	if r.Version == nil {
		return nil
	}

	return struct {
		Version int `url:"version"`
	}{Version: *r.Version}
}

// Send deletes the chapter.
func (r *DeleteChapter) Send(ctx context.Context) (*NoDataResponse, error) {
	return send[NoDataResponse](ctx, r.handle, r)
}

// DeleteChapterBuilder builds a DeleteChapter.
type DeleteChapterBuilder struct {
	builderBase
	chapterID *uuid.UUID
	version   *int
}

// NewDeleteChapterBuilder returns a builder bound to h.
func NewDeleteChapterBuilder(h Handle) *DeleteChapterBuilder {
	return &DeleteChapterBuilder{builderBase: builderBase{handle: h}}
}

func (b *DeleteChapterBuilder) ChapterID(id uuid.UUID) *DeleteChapterBuilder {
	b.chapterID = &id

	return b
}

func (b *DeleteChapterBuilder) Version(v int) *DeleteChapterBuilder {
	b.version = &v

	return b
}

// Build validates required fields and returns the request.
func (b *DeleteChapterBuilder) Build() (*DeleteChapter, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if err := requireID("chapter_id", b.chapterID); err != nil {
		return nil, err
	}

	return &DeleteChapter{handle: b.handle, ChapterID: *b.chapterID, Version: b.version}, nil
}

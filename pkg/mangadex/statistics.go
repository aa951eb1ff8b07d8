package mangadex

import (
	"context"

	"github.com/google/uuid"
)

// GetChapterStatistics is GET /statistics/chapter/{id}.
type GetChapterStatistics struct {
	noPayload
	handle Handle

	ChapterID uuid.UUID
}

func (r *GetChapterStatistics) Method() string    { return methodGet }
func (r *GetChapterStatistics) Path() string      { return idPath("/statistics/chapter/%s", r.ChapterID) }
func (r *GetChapterStatistics) RequireAuth() bool { return false }

// Send fetches the statistics.
func (r *GetChapterStatistics) Send(ctx context.Context) (*ChapterStatisticsResponse, error) {
	return send[ChapterStatisticsResponse](ctx, r.handle, r)
}

// GetChapterStatisticsBuilder builds a GetChapterStatistics.
type GetChapterStatisticsBuilder struct {
	builderBase
	chapterID *uuid.UUID
}

// NewGetChapterStatisticsBuilder returns a builder bound to h.
func NewGetChapterStatisticsBuilder(h Handle) *GetChapterStatisticsBuilder {
	return &GetChapterStatisticsBuilder{builderBase: builderBase{handle: h}}
}

func (b *GetChapterStatisticsBuilder) ChapterID(id uuid.UUID) *GetChapterStatisticsBuilder {
	b.chapterID = &id

	return b
}

// Build validates required fields and returns the request.
func (b *GetChapterStatisticsBuilder) Build() (*GetChapterStatistics, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if err := requireID("chapter_id", b.chapterID); err != nil {
		return nil, err
	}

	return &GetChapterStatistics{handle: b.handle, ChapterID: *b.chapterID}, nil
}

// FindChapterStatistics is GET /statistics/chapter?chapter[]=...
type FindChapterStatistics struct {
	handle Handle

	Chapters []uuid.UUID `url:"chapter,brackets"`
}

func (r *FindChapterStatistics) Method() string        { return methodGet }
func (r *FindChapterStatistics) Path() string          { return "/statistics/chapter" }
func (r *FindChapterStatistics) Query() any            { return r }
func (r *FindChapterStatistics) Body() any             { return nil }
func (r *FindChapterStatistics) Multipart() *Multipart { return nil }
func (r *FindChapterStatistics) RequireAuth() bool     { return false }

// Send fetches the statistics.
func (r *FindChapterStatistics) Send(ctx context.Context) (*ChapterStatisticsResponse, error) {
	return send[ChapterStatisticsResponse](ctx, r.handle, r)
}

// FindChapterStatisticsBuilder builds a FindChapterStatistics.
type FindChapterStatisticsBuilder struct {
	builderBase
	chapters []uuid.UUID
}

// NewFindChapterStatisticsBuilder returns a builder bound to h.
func NewFindChapterStatisticsBuilder(h Handle) *FindChapterStatisticsBuilder {
	return &FindChapterStatisticsBuilder{builderBase: builderBase{handle: h}}
}

func (b *FindChapterStatisticsBuilder) AddChapter(id uuid.UUID) *FindChapterStatisticsBuilder {
	b.chapters = append(b.chapters, id)

	return b
}

// Build validates required fields and returns the request.
func (b *FindChapterStatisticsBuilder) Build() (*FindChapterStatistics, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if len(b.chapters) == 0 {
		return nil, &UninitializedFieldError{Field: "chapter"}
	}

	return &FindChapterStatistics{handle: b.handle, Chapters: b.chapters}, nil
}

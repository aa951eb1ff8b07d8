package mangadex

import (
	"context"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/google/uuid"
)

// UploadCover is POST /cover/{mangaId}, sent as multipart/form-data.
type UploadCover struct {
	handle Handle

	MangaID     uuid.UUID
	File        []byte
	FileName    string
	ContentType string
	Volume      *string
	Description string
	Locale      Language
}

func (r *UploadCover) Method() string    { return methodPost }
func (r *UploadCover) Path() string      { return idPath("/cover/%s", r.MangaID) }
func (r *UploadCover) Query() any        { return nil }
func (r *UploadCover) Body() any         { return nil }
func (r *UploadCover) RequireAuth() bool { return true }

// Multipart lays out the form: the image under "file", then the text fields.
func (r *UploadCover) Multipart() *Multipart {
	contentType := r.ContentType
	if contentType == "" {
		contentType = constants.ContentTypeOctetStream
	}

	form := &Multipart{
		Files: []MultipartFile{{
			Field:       "file",
			FileName:    r.FileName,
			ContentType: contentType,
			Data:        r.File,
		}},
	}

	if r.Volume != nil {
		form.Fields = append(form.Fields, MultipartField{Name: "volume", Value: *r.Volume})
	}

	if r.Description != "" {
		form.Fields = append(form.Fields, MultipartField{Name: "description", Value: r.Description})
	}

	if r.Locale != "" {
		form.Fields = append(form.Fields, MultipartField{Name: "locale", Value: string(r.Locale)})
	}

	return form
}

// Send uploads the cover.
func (r *UploadCover) Send(ctx context.Context) (*CoverResponse, error) {
	return send[CoverResponse](ctx, r.handle, r)
}

// UploadCoverBuilder builds an UploadCover.
type UploadCoverBuilder struct {
	builderBase
	mangaID *uuid.UUID
	file    []byte
	req     UploadCover
}

// NewUploadCoverBuilder returns a builder bound to h.
func NewUploadCoverBuilder(h Handle) *UploadCoverBuilder {
	return &UploadCoverBuilder{builderBase: builderBase{handle: h}}
}

func (b *UploadCoverBuilder) MangaID(id uuid.UUID) *UploadCoverBuilder {
	b.mangaID = &id

	return b
}

// File sets the image bytes and the name reported for them.
func (b *UploadCoverBuilder) File(name string, data []byte) *UploadCoverBuilder {
	b.req.FileName = name
	b.file = data

	return b
}

func (b *UploadCoverBuilder) ContentType(contentType string) *UploadCoverBuilder {
	b.req.ContentType = contentType

	return b
}

func (b *UploadCoverBuilder) Volume(volume string) *UploadCoverBuilder {
	b.req.Volume = &volume

	return b
}

func (b *UploadCoverBuilder) Description(description string) *UploadCoverBuilder {
	b.req.Description = description

	return b
}

func (b *UploadCoverBuilder) Locale(lang Language) *UploadCoverBuilder {
	b.req.Locale = lang

	return b
}

// Build validates required fields and returns the request.
func (b *UploadCoverBuilder) Build() (*UploadCover, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if err := requireID("manga_id", b.mangaID); err != nil {
		return nil, err
	}

	if b.file == nil {
		return nil, &UninitializedFieldError{Field: "file"}
	}

	req := b.req
	req.handle = b.handle
	req.MangaID = *b.mangaID
	req.File = b.file

	return &req, nil
}

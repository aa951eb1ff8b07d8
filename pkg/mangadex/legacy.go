package mangadex

import "context"

// LegacyIDMapping is POST /legacy/mapping: it resolves numeric ids from the
// old site to current UUIDs.
type LegacyIDMapping struct {
	handle Handle

	Type LegacyMappingType `json:"type"`
	IDs  []uint64          `json:"ids"`
}

func (r *LegacyIDMapping) Method() string        { return methodPost }
func (r *LegacyIDMapping) Path() string          { return "/legacy/mapping" }
func (r *LegacyIDMapping) Query() any            { return nil }
func (r *LegacyIDMapping) Body() any             { return r }
func (r *LegacyIDMapping) Multipart() *Multipart { return nil }
func (r *LegacyIDMapping) RequireAuth() bool     { return false }

// Send resolves the ids.
func (r *LegacyIDMapping) Send(ctx context.Context) (*LegacyMappingCollection, error) {
	return send[LegacyMappingCollection](ctx, r.handle, r)
}

// LegacyIDMappingBuilder builds a LegacyIDMapping.
type LegacyIDMappingBuilder struct {
	builderBase
	mappingType *LegacyMappingType
	ids         []uint64
}

// NewLegacyIDMappingBuilder returns a builder bound to h.
func NewLegacyIDMappingBuilder(h Handle) *LegacyIDMappingBuilder {
	return &LegacyIDMappingBuilder{builderBase: builderBase{handle: h}}
}

func (b *LegacyIDMappingBuilder) MappingType(t LegacyMappingType) *LegacyIDMappingBuilder {
	b.mappingType = &t

	return b
}

func (b *LegacyIDMappingBuilder) AddID(id uint64) *LegacyIDMappingBuilder {
	b.ids = append(b.ids, id)

	return b
}

// Build validates required fields and returns the request.
func (b *LegacyIDMappingBuilder) Build() (*LegacyIDMapping, error) {
	if err := b.checkHandle(); err != nil {
		return nil, err
	}

	if b.mappingType == nil {
		return nil, &UninitializedFieldError{Field: "type"}
	}

	if b.ids == nil {
		return nil, &UninitializedFieldError{Field: "ids"}
	}

	return &LegacyIDMapping{handle: b.handle, Type: *b.mappingType, IDs: b.ids}, nil
}

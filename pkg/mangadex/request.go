package mangadex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// send dispatches e through h and decodes the reply into a new T.
func send[T any](ctx context.Context, h Handle, e Endpoint) (*T, error) {
	var out T

	err := h.Send(ctx, e, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// sendFollowCheck dispatches a follow-check request and reads the answer from the status.
func sendFollowCheck(ctx context.Context, h Handle, e Endpoint) (bool, error) {
	raw, err := h.SendRaw(ctx, e)
	if err != nil {
		return false, err
	}

	return FollowStatus(raw)
}

// idPath builds a resource path with the id as its last segment.
func idPath(format string, id uuid.UUID) string {
	return fmt.Sprintf(format, id.String())
}

// builderBase holds the handle every builder injects into the request it builds.
type builderBase struct {
	handle Handle
}

func (b *builderBase) checkHandle() error {
	if b.handle == nil {
		return ErrNoClientHandle
	}

	return nil
}

func requireID(field string, id *uuid.UUID) error {
	if id == nil {
		return &UninitializedFieldError{Field: field}
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}

// Methods shared by request descriptors.
const (
	methodGet    = http.MethodGet
	methodPost   = http.MethodPost
	methodDelete = http.MethodDelete
)

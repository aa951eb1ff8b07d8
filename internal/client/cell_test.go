package client

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusiveCell(t *testing.T) {
	t.Parallel()

	st := &state{}
	c := newCell(mangadex.ModeExclusive, st)

	got, release, err := c.borrow(context.Background())
	require.NoError(t, err)
	assert.Same(t, st, got)

	_, _, err = c.borrow(context.Background())
	require.ErrorIs(t, err, mangadex.ErrBorrowConflict)

	release()

	_, release, err = c.borrow(context.Background())
	require.NoError(t, err)
	release()
}

func TestSharedCell(t *testing.T) {
	t.Parallel()

	st := &state{}
	c := newCell(mangadex.ModeShared, st)

	_, release, err := c.borrow(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err = c.borrow(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	acquired := make(chan struct{})

	go func() {
		_, second, err := c.borrow(context.Background())
		if assert.NoError(t, err) {
			second()
		}

		close(acquired)
	}()

	release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiting borrower was not woken")
	}
}

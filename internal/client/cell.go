package client

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"golang.org/x/sync/semaphore"
)

// cell guards the client state. borrow hands out the state together with the
// function that gives it back; the caller must call release exactly once.
type cell interface {
	borrow(ctx context.Context) (st *state, release func(), err error)
}

func newCell(mode mangadex.Mode, st *state) cell {
	if mode == mangadex.ModeShared {
		return &sharedCell{sem: semaphore.NewWeighted(1), st: st}
	}

	return &exclusiveCell{st: st}
}

// exclusiveCell never waits: a borrow that overlaps another fails.
type exclusiveCell struct {
	busy atomic.Bool
	st   *state
}

func (c *exclusiveCell) borrow(context.Context) (*state, func(), error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, nil, mangadex.ErrBorrowConflict
	}

	return c.st, func() { c.busy.Store(false) }, nil
}

// sharedCell queues borrowers behind a weighted semaphore of size one.
type sharedCell struct {
	sem *semaphore.Weighted
	st  *state
}

func (c *sharedCell) borrow(ctx context.Context) (*state, func(), error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, fmt.Errorf("waiting for client state: %w", err)
	}

	return c.st, func() { c.sem.Release(1) }, nil
}

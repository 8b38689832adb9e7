// Package lock provides ShowLocker implementations: one for a single
// process and one backed by Redis for several instances sharing a database.
package lock

import (
	"context"
	"fmt"
	"sync"

	"github.com/srgjo27/movie_booking/internal/core/domain"
)

// LocalLocker hands out one semaphore per show. Waiters give up when their
// context is done.
type LocalLocker struct {
	mu    sync.Mutex
	shows map[int64]*showSlot
}

type showSlot struct {
	sem     chan struct{}
	waiters int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{shows: make(map[int64]*showSlot)}
}

func (l *LocalLocker) Lock(ctx context.Context, showID int64) (func(), error) {
	slot := l.acquireSlot(showID)

	select {
	case slot.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseSlot(showID, slot)
		return nil, fmt.Errorf("%w: show %d: %v", domain.ErrBusy, showID, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-slot.sem
			l.releaseSlot(showID, slot)
		})
	}, nil
}

func (l *LocalLocker) acquireSlot(showID int64) *showSlot {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.shows[showID]
	if !ok {
		slot = &showSlot{sem: make(chan struct{}, 1)}
		l.shows[showID] = slot
	}
	slot.waiters++

	return slot
}

// releaseSlot drops the slot once nobody holds or waits for it.
func (l *LocalLocker) releaseSlot(showID int64, slot *showSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot.waiters--
	if slot.waiters == 0 {
		delete(l.shows, showID)
	}
}

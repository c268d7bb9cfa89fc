// Package sessions persists each browser session's UI state between requests.
package sessions

import (
	"context"
	"hash/fnv"
	"sync"

	"staysearch/state"
)

// Store loads and saves encoded session state by session id.
// Load reports found=false for an unknown or expired session.
type Store interface {
	Load(ctx context.Context, id string) (home *state.Home, found bool, err error)
	Save(ctx context.Context, id string, home *state.Home) error
	Delete(ctx context.Context, id string) error
}

const lockStripes = 64

// Locker serializes load-modify-save per session id.
// Ids hash onto a fixed set of mutexes, so unrelated sessions rarely share one.
type Locker struct {
	stripes [lockStripes]sync.Mutex
}

func (l *Locker) stripe(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &l.stripes[h.Sum32()%lockStripes]
}

// Lock acquires the session's stripe and returns its unlock func
func (l *Locker) Lock(id string) func() {
	mu := l.stripe(id)
	mu.Lock()
	return mu.Unlock
}

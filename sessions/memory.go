package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/rohanthewiz/serr"

	"staysearch/metrics"
	"staysearch/state"
)

type memoryEntry struct {
	raw     []byte
	expires time.Time // zero when the store has no ttl
}

// MemoryStore keeps encoded session state in process memory.
// Each save restarts the session's ttl; expired sessions read as missing
// and are swept out on a later save.
type MemoryStore struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore returns an empty store. A ttl of zero or less keeps sessions forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{data: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

func (m *MemoryStore) Load(ctx context.Context, id string) (*state.Home, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, serr.Wrap(err, "session load canceled")
	}
	now := m.now()
	m.mu.RLock()
	entry, ok := m.data[id]
	m.mu.RUnlock()
	if !ok || entry.expired(now) {
		metrics.ObserveSession("memory", "miss")
		return nil, false, nil
	}
	home, err := state.Decode(entry.raw)
	if err != nil {
		return nil, false, serr.Wrap(err, "failed to decode session", "session_id", id)
	}
	metrics.ObserveSession("memory", "hit")
	return home, true, nil
}

func (m *MemoryStore) Save(ctx context.Context, id string, home *state.Home) error {
	if err := ctx.Err(); err != nil {
		return serr.Wrap(err, "session save canceled")
	}
	raw, err := state.Encode(home)
	if err != nil {
		return serr.Wrap(err, "failed to encode session", "session_id", id)
	}

	now := m.now()
	entry := memoryEntry{raw: raw}
	if m.ttl > 0 {
		entry.expires = now.Add(m.ttl)
	}

	m.mu.Lock()
	m.data[id] = entry
	m.sweep(now)
	m.mu.Unlock()
	metrics.ObserveSession("memory", "set")
	return nil
}

// sweep drops expired sessions, at most once per ttl. Callers hold mu.
func (m *MemoryStore) sweep(now time.Time) {
	if m.ttl <= 0 || now.Sub(m.lastSweep) < m.ttl {
		return
	}
	m.lastSweep = now
	for id, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, id)
			metrics.ObserveSession("memory", "expire")
		}
	}
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.data, id)
	m.mu.Unlock()
	metrics.ObserveSession("memory", "del")
	return nil
}

// Len returns the number of stored sessions, expired ones included until swept
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

package recruit

import (
	"sync"
	"time"
)

// Snapshot is one consistent load of every data source, plus when it was
// fetched. Candidates are already resolved and merged.
type Snapshot struct {
	Candidates []CandidateRecord
	Jobs       []JobRecord
	FetchedAt  time.Time
}

// SnapshotCache fronts the "load all data sources" step. Staleness is
// purely time-based; writers that change scores must call Invalidate or
// callers tolerate eventual consistency up to the TTL. The clock is
// injectable so staleness is testable.
type SnapshotCache struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	snap *Snapshot
}

// NewSnapshotCache creates a cache with the given TTL. A nil clock uses
// time.Now. A zero or negative TTL disables caching entirely.
func NewSnapshotCache(ttl time.Duration, now func() time.Time) *SnapshotCache {
	if now == nil {
		now = time.Now
	}
	return &SnapshotCache{ttl: ttl, now: now}
}

// Get returns the cached snapshot if one exists and is fresher than the
// TTL.
func (c *SnapshotCache) Get() (*Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap == nil || c.ttl <= 0 {
		return nil, false
	}
	if c.now().Sub(c.snap.FetchedAt) >= c.ttl {
		return nil, false
	}
	return c.snap, true
}

// Put stores a snapshot, stamping it with the cache clock if unset.
func (c *SnapshotCache) Put(snap *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if snap != nil && snap.FetchedAt.IsZero() {
		snap.FetchedAt = c.now()
	}
	c.snap = snap
}

// Invalidate drops the cached snapshot. Score-update operations call this
// so the next read observes their write immediately.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = nil
}

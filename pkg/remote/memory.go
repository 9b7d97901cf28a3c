package remote

import (
	"context"
	"sync"
)

// MemoryStore is an in-process snapshot store for single-instance
// deployments and tests. Snapshots never expire; Delete is the only
// eviction.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

// NewMemoryStore creates an empty in-process snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]Snapshot)}
}

// Save stores the snapshot, replacing any previous one.
func (s *MemoryStore) Save(ctx context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[snap.ShowID] = snap
	return nil
}

// Load returns the stored snapshot, or nil, nil when absent.
func (s *MemoryStore) Load(ctx context.Context, showID string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snaps[showID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// Delete removes the snapshot, if present.
func (s *MemoryStore) Delete(ctx context.Context, showID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, showID)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements StateStore.
var _ StateStore = (*MemoryStore)(nil)

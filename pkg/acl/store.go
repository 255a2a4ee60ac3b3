package acl

import (
	"sync"

	"github.com/backkem/matterpath/pkg/fabric"
)

// Store persists ACL entries per fabric. The Manager reads and writes
// whole per-fabric snapshots; implementations can back them with
// memory, flash or any key-value layer.
type Store interface {
	// LoadEntries returns the stored entries for a fabric. A fabric
	// with nothing stored yields an empty slice, not an error.
	LoadEntries(fabricIndex fabric.FabricIndex) ([]Entry, error)

	// SaveEntries replaces the stored entries for a fabric. Saving an
	// empty slice clears the fabric.
	SaveEntries(fabricIndex fabric.FabricIndex, entries []Entry) error
}

// MemoryStore is a Store backed by a map. The default when no
// persistent store is configured, and the workhorse for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[fabric.FabricIndex][]Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[fabric.FabricIndex][]Entry),
	}
}

// LoadEntries returns a copy of the stored entries for a fabric.
func (s *MemoryStore) LoadEntries(fabricIndex fabric.FabricIndex) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.entries[fabricIndex]
	result := make([]Entry, len(stored))
	copy(result, stored)
	return result, nil
}

// SaveEntries replaces the stored entries for a fabric.
func (s *MemoryStore) SaveEntries(fabricIndex fabric.FabricIndex, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(entries) == 0 {
		delete(s.entries, fabricIndex)
		return nil
	}

	stored := make([]Entry, len(entries))
	copy(stored, entries)
	s.entries[fabricIndex] = stored
	return nil
}

var _ Store = (*MemoryStore)(nil)

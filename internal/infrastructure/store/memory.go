// Package store holds the reference store implementations: the mapping
// from checkout session to processor payment reference.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/domain"
)

type memoryEntry struct {
	pspReference string
	storedAt     time.Time
}

// MemoryStore is the in-process reference store. References are keyed
// by session ID and write-once per key.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

var _ application.ReferenceStore = (*MemoryStore)(nil)

func (s *MemoryStore) Put(_ context.Context, sessionID, pspReference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[sessionID]; ok {
		if existing.pspReference == pspReference {
			// Idempotent retry of the same assignment.
			return nil
		}
		return domain.NewReferenceConflictError(sessionID, existing.pspReference, pspReference)
	}

	s.entries[sessionID] = memoryEntry{
		pspReference: pspReference,
		storedAt:     time.Now(),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return "", false, nil
	}
	return entry.pspReference, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// SweepOlderThan drops entries stored before the cutoff and reports how
// many were removed. Called by the retention sweeper, never by the core.
func (s *MemoryStore) SweepOlderThan(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for sessionID, entry := range s.entries {
		if entry.storedAt.Before(cutoff) {
			delete(s.entries, sessionID)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

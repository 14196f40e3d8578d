package otp

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is a process local store used for email verification codes;
// it is lost on restart and stale entries are never swept, they linger
// until overwritten by a new issue call
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryStore creates an empty in memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
	}
}

// Put stores the code for the identity, last write wins
func (m *MemoryStore) Put(_ context.Context, identity, code string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[identity] = entry{
		code:      code,
		expiresAt: expiresAt,
	}

	return nil
}

// Get returns the live entry for the identity
func (m *MemoryStore) Get(_ context.Context, identity string) (string, time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[identity]
	if !ok {
		return "", time.Time{}, ErrNoEntry
	}

	return e.code, e.expiresAt, nil
}

// Delete removes the entry for the identity
func (m *MemoryStore) Delete(_ context.Context, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, identity)
	return nil
}

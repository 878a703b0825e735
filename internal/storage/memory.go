package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memoryStore struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore keeps settings in process memory forever. Everything is lost on restart.
func NewMemoryStore() Store {
	return NewMemoryStoreWithTTL(0, time.Now)
}

// NewMemoryStoreWithTTL keeps every key for ttl after its last write, like the Redis store;
// ttl <= 0 keeps keys forever. Expired keys are dropped on read and by a sweep on write.
func NewMemoryStoreWithTTL(ttl time.Duration, now func() time.Time) Store {
	return &memoryStore{data: make(map[string]memoryEntry), ttl: ttl, now: now, lastSweep: now()}
}

func (m *memoryStore) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (m *memoryStore) Get(_ context.Context, key string, value any) (bool, error) {
	now := m.now()

	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if m.expired(entry, now) {
		m.mu.Lock()
		if current, ok := m.data[key]; ok && m.expired(current, now) {
			delete(m.data, key)
		}
		m.mu.Unlock()

		return false, nil
	}

	if err := json.Unmarshal(entry.data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	now := m.now()
	entry := memoryEntry{data: data}

	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.sweep(now)
	m.mu.Unlock()

	return nil
}

// sweep drops expired keys at most once per ttl. Callers hold m.mu.
func (m *memoryStore) sweep(now time.Time) {
	if m.ttl <= 0 || now.Sub(m.lastSweep) < m.ttl {
		return
	}

	m.lastSweep = now

	for key, entry := range m.data {
		if m.expired(entry, now) {
			delete(m.data, key)
		}
	}
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Close() error {
	return nil
}

// Len reports how many keys are held, expired or not. Used to check sweeping.
func (m *memoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}

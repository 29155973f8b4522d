package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemStore is an in-memory Store for tests and offline runs.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]*Record

	// now is swappable so tests can control timestamps.
	now func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{records: map[string]*Record{}, now: time.Now}
}

func memKey(namespace, key string) string { return namespace + "\x00" + key }

func (m *MemStore) Get(ctx context.Context, namespace, key string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[memKey(namespace, key)]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Value, nil
}

func (m *MemStore) Put(ctx context.Context, namespace, key string, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	k := memKey(namespace, key)
	if rec, ok := m.records[k]; ok {
		rec.Value = value
		rec.UpdatedAt = now
		return nil
	}
	m.records[k] = &Record{
		Namespace: namespace,
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (m *MemStore) Search(ctx context.Context, namespace string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Record
	for _, rec := range m.records {
		if strings.Contains(rec.Namespace, namespace) {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// SetClock overrides the timestamp source. Test hook.
func (m *MemStore) SetClock(now func() time.Time) { m.now = now }

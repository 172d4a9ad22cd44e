package prefs

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore is a process-local Store. Entries never expire.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.c.Set(key, value, cache.NoExpiration)
	return nil
}

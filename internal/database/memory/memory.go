package memory

import (
	"context"

	"github.com/jellydator/ttlcache/v3"
)

type kv struct {
	cache *ttlcache.Cache[string, []byte]
}

// New returns a process-local store. Items never expire.
func New() *kv {
	return &kv{
		cache: ttlcache.New[string, []byte](
			ttlcache.WithTTL[string, []byte](ttlcache.NoTTL),
		),
	}
}

func (m *kv) Get(_ context.Context, key string) ([]byte, bool, error) {
	item := m.cache.Get(key)
	if item == nil {
		return nil, false, nil
	}

	value := make([]byte, len(item.Value()))
	copy(value, item.Value())

	return value, true, nil
}

func (m *kv) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.cache.Set(key, stored, ttlcache.NoTTL)

	return nil
}

package thumbnail

import (
	"context"
	"errors"
	"sync"
	"time"
)

// mockPageFetcher is a mock implementation of the PageImageFetcher interface
type mockPageFetcher struct {
	mu        sync.Mutex
	calls     []string
	fetchFunc func(ctx context.Context, pageURL string) (string, error)
}

func (m *mockPageFetcher) FetchPageImage(ctx context.Context, pageURL string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, pageURL)
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, pageURL)
	}
	return "", nil
}

// mapCache is a map-backed implementation of the Cache interface
type mapCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[string][]byte)}
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return v, nil
}

func (m *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *mapCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

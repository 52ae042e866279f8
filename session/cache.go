package session

import (
	"fmt"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/internal/cache"
)

// CacheStore keeps session state in a ristretto cache. With a positive ttl,
// entries disappear on their own once it elapses.
type CacheStore struct {
	cache *cache.Manager
}

// NewCacheStore creates a CacheStore. Close it when done.
func NewCacheStore(ttl time.Duration, logger log.Logger) (*CacheStore, error) {
	m, err := cache.New(ttl, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session cache: %w", err)
	}

	return &CacheStore{cache: m}, nil
}

func (s *CacheStore) Get(key string) (string, bool, error) {
	v, ok := s.cache.Get(key)

	return v, ok, nil
}

func (s *CacheStore) Set(key, value string) error {
	if !s.cache.Store(key, value) {
		return fmt.Errorf("%w: key %s", cn.ErrSessionWriteDropped, key)
	}

	return nil
}

func (s *CacheStore) Remove(keys ...string) error {
	for _, k := range keys {
		s.cache.Delete(k)
	}

	return nil
}

// Close releases the cache.
func (s *CacheStore) Close() {
	s.cache.Close()
}

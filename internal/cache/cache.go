package cache

import (
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/dgraph-io/ristretto/v2"
)

// Manager wraps a ristretto cache holding session values
type Manager struct {
	cache  *ristretto.Cache[string, string]
	ttl    time.Duration
	logger log.Logger
}

// New creates a new cache manager. A zero ttl keeps entries until they are deleted.
func New(ttl time.Duration, logger log.Logger) (*Manager, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: cn.CacheNumCounters,
		MaxCost:     cn.CacheMaxCost,
		BufferItems: cn.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Get retrieves a cached value by key
func (m *Manager) Get(key string) (string, bool) {
	return m.cache.Get(key)
}

// Store caches a value and waits until it is visible to Get.
// It reports false when ristretto dropped the write.
func (m *Manager) Store(key, value string) bool {
	var ok bool
	if m.ttl > 0 {
		ok = m.cache.SetWithTTL(key, value, 1, m.ttl)
	} else {
		ok = m.cache.Set(key, value, 1)
	}

	m.cache.Wait()

	if !ok {
		m.logger.Warnf("Session cache dropped write for key %s", key)
		return false
	}

	if _, found := m.cache.Get(key); !found {
		m.logger.Warnf("Session cache rejected key %s", key)
		return false
	}

	m.logger.Debugf("Stored session key %s", key)

	return true
}

// Delete removes a key
func (m *Manager) Delete(key string) {
	m.cache.Del(key)
	m.cache.Wait()
}

// Close stops the cache's background goroutines
func (m *Manager) Close() {
	m.cache.Close()
}

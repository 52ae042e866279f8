// Package session holds the client-side session state: the bearer token and
// the serialized current user. The HTTP client reads the token on every request
// and clears both keys when the backend answers 401.
package session

//go:generate mockgen -source=store.go -destination=store_mock.go -package=session

import (
	"sync"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
)

// Store is a string key/value store for session state.
type Store interface {
	// Get returns the value under key and whether it is present.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
	// Remove deletes the given keys. Missing keys are not an error.
	Remove(keys ...string) error
}

// MemoryStore keeps session state in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]

	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

func (s *MemoryStore) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}

	return nil
}

// Token returns the stored bearer token. An empty token counts as absent.
func Token(s Store) (string, bool, error) {
	token, ok, err := s.Get(cn.SessionTokenKey)
	if err != nil || !ok || token == "" {
		return "", false, err
	}

	return token, true, nil
}

// SaveLogin stores the token and, when non-empty, the serialized user.
func SaveLogin(s Store, token, user string) error {
	if err := s.Set(cn.SessionTokenKey, token); err != nil {
		return err
	}

	if user == "" {
		return nil
	}

	return s.Set(cn.SessionUserKey, user)
}

// Clear removes both the token and the user.
func Clear(s Store) error {
	return s.Remove(cn.SessionTokenKey, cn.SessionUserKey)
}

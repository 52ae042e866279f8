package redirect

import (
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// Handler performs the navigation to location, e.g. the login page
type Handler func(location string)

// Manager owns the navigation behavior used when the session expires
type Manager struct {
	handler Handler
	mu      sync.RWMutex
}

// New creates a manager whose default handler only logs the redirect,
// since a library has no page to navigate
func New(logger log.Logger) *Manager {
	return &Manager{
		handler: func(location string) {
			logger.Infof("Session expired - redirecting to %s", location)
		},
	}
}

// SetHandler updates the navigation handler. A nil handler is ignored.
func (m *Manager) SetHandler(handler Handler) {
	if handler == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.handler = handler
}

// Navigate invokes the current handler
func (m *Manager) Navigate(location string) {
	m.mu.RLock()
	handler := m.handler
	m.mu.RUnlock()

	handler(location)
}

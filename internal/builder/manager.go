package builder

import (
	"sync"
	"time"

	"quoteform-app/internal/domain/forms"
)

type managedSession struct {
	session *Session
	touched time.Time
}

// Manager is the in-memory registry of live builder sessions, keyed by form
// id. Sessions are created on demand and dropped on save or close. Sessions
// abandoned without either are evicted lazily once they have sat untouched
// for the configured idle TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managedSession
	store    Store
	cfg      Config
	now      func() time.Time
}

func NewManager(store Store, cfg Config) *Manager {
	return &Manager{
		sessions: make(map[string]*managedSession),
		store:    store,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
	}
}

// Open returns the live session for the form, creating one from the given
// snapshot if none exists yet.
func (m *Manager) Open(form *forms.QuoteForm, catalog forms.ProductCatalog) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictIdle()
	if ms, ok := m.sessions[form.ID]; ok {
		ms.touched = m.now()
		return ms.session
	}
	s := NewSession(m.store, m.cfg, form, catalog)
	m.sessions[form.ID] = &managedSession{session: s, touched: m.now()}
	return s
}

// Get returns the live session for the form, if any.
func (m *Manager) Get(formID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictIdle()
	ms, ok := m.sessions[formID]
	if !ok {
		return nil, false
	}
	ms.touched = m.now()
	return ms.session, true
}

// Drop removes the session from the registry. The caller decides whether to
// Close it first; Drop itself never cancels in-flight work.
func (m *Manager) Drop(formID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, formID)
}

// evictIdle closes and removes sessions untouched for longer than the idle
// TTL. Caller must hold m.mu.
func (m *Manager) evictIdle() {
	cutoff := m.now().Add(-m.cfg.IdleTTL)
	for id, ms := range m.sessions {
		if ms.touched.Before(cutoff) {
			ms.session.Close()
			delete(m.sessions, id)
		}
	}
}

package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"scanoverlay/internal/models"
)

// Manager is the uuid-keyed registry of live sessions, one per connected
// presentation client.
type Manager struct {
	clock      Clock
	clearDelay time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty registry. Sessions it creates use the given
// clock and clear delay (zero values fall back to defaults, as in New).
func NewManager(clearDelay time.Duration, clock Clock) *Manager {
	return &Manager{
		clock:      clock,
		clearDelay: clearDelay,
		sessions:   make(map[string]*Session),
	}
}

// Create registers a new Idle session for the given display.
func (m *Manager) Create(metrics models.DisplayMetrics) *Session {
	sess := New(metrics, m.clearDelay, m.clock)
	sess.ID = uuid.New().String()

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	log.Printf("[SESSION] Created session %s (screen %gx%g @%gx)",
		sess.ID, metrics.ScreenWidth, metrics.ScreenHeight, metrics.PixelRatio)

	return sess
}

// Get looks up a session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, exists := m.sessions[id]
	return sess, exists
}

// Remove disposes a session and drops it from the registry. Reports whether
// the session existed.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	sess, exists := m.sessions[id]
	if exists {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !exists {
		return false
	}

	sess.Dispose()
	log.Printf("[SESSION] Removed session %s", id)
	return true
}

// Shutdown disposes every live session. Used on server teardown.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for id, sess := range sessions {
		sess.Dispose()
		log.Printf("[SESSION] Disposed session %s on shutdown", id)
	}
}

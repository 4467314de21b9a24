// ABOUTME: Session manager giving each browser page its own UI controller
// ABOUTME: Sessions live in a TTL cache and are closed when evicted

package session

import (
	"time"

	"filepreview-app/core/errors"
	"filepreview-app/core/interfaces"
	"filepreview-app/core/ui"
	"github.com/google/uuid"
)

// Session binds an id to one controller and its surface
type Session struct {
	ID         string
	Controller *ui.Controller
	CreatedAt  time.Time
}

// Snapshot returns the current surface of the session
func (s *Session) Snapshot() ui.Snapshot {
	return s.Controller.Surface().Snapshot()
}

// ControllerFactory builds the controller for a new session
type ControllerFactory func() *ui.Controller

// Manager opens, finds and closes sessions
type Manager struct {
	deps    interfaces.Dependencies
	ttl     time.Duration
	factory ControllerFactory
}

// NewManager creates a session manager. Every lookup extends a session's
// lifetime by ttl; evicted sessions have their controller closed.
func NewManager(deps interfaces.Dependencies, ttl time.Duration, factory ControllerFactory) *Manager {
	m := &Manager{
		deps:    deps,
		ttl:     ttl,
		factory: factory,
	}
	if m.factory == nil {
		m.factory = func() *ui.Controller {
			return ui.NewController(ui.Config{Logger: deps.Logger})
		}
	}

	deps.Sessions.OnEvicted(func(key string, value interface{}) {
		if s, ok := value.(*Session); ok {
			s.Controller.Close()
			m.log("Session closed", map[string]interface{}{
				"session_id": key,
			})
		}
	})

	return m
}

// Open creates a new session
func (m *Manager) Open() *Session {
	s := &Session{
		ID:         uuid.New().String(),
		Controller: m.factory(),
		CreatedAt:  time.Now(),
	}
	m.deps.Sessions.Set(s.ID, s, m.ttl)

	m.log("Session opened", map[string]interface{}{
		"session_id": s.ID,
	})
	return s
}

// Get returns the session with id and refreshes its lifetime
func (m *Manager) Get(id string) (*Session, error) {
	value, ok := m.deps.Sessions.Get(id)
	if !ok {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}
	s, ok := value.(*Session)
	if !ok {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}

	// A concurrent Close may have removed the key since the lookup.
	if err := m.deps.Sessions.Replace(id, s, m.ttl); err != nil {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}
	return s, nil
}

// Close removes the session and stops its controller
func (m *Manager) Close(id string) error {
	if _, ok := m.deps.Sessions.Get(id); !ok {
		return &errors.NotFoundError{Resource: "session", ID: id}
	}
	m.deps.Sessions.Delete(id)
	return nil
}

// CloseAll removes every live session and stops its controller. It
// returns the number of sessions closed.
func (m *Manager) CloseAll() int {
	closed := 0
	for id := range m.deps.Sessions.Items() {
		m.deps.Sessions.Delete(id)
		closed++
	}
	return closed
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	return m.deps.Sessions.Count()
}

func (m *Manager) log(msg string, fields map[string]interface{}) {
	if m.deps.Logger != nil {
		m.deps.Logger.Debug(msg, fields)
	}
}

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/paseto"
)

var (
	ErrNoSession = errors.New("session not found")
	ErrExpired   = errors.New("session expired")
)

// Session is the server-side state behind a token. It exists before login so
// an admin override can be attached to an anonymous visitor.
type Session struct {
	ID            string             `json:"id"`
	EmployeeCode  string             `json:"employee_code,omitempty"`
	Name          string             `json:"name,omitempty"`
	Designation   models.Designation `json:"designation,omitempty"`
	AdminOverride bool               `json:"admin_override"`
	CreatedAt     time.Time          `json:"created_at"`
	ExpiresAt     time.Time          `json:"expires_at"`
}

func (s Session) Authenticated() bool {
	return s.EmployeeCode != ""
}

func (s Session) IsAdmin() bool {
	return s.Authenticated() && s.Designation.IsAdmin()
}

// Manager is an in-memory session registry. Tokens only carry the id.
type Manager struct {
	maker *paseto.Maker
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(maker *paseto.Maker, ttl time.Duration) *Manager {
	return &Manager{
		maker:    maker,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts an anonymous session.
func (m *Manager) Create() (Session, string, error) {
	return m.create(Session{})
}

func (m *Manager) create(base Session) (Session, string, error) {
	now := m.now()
	base.ID = uuid.NewString()
	base.CreatedAt = now
	base.ExpiresAt = now.Add(m.ttl)

	token, err := m.maker.CreateToken(base.ID, now, m.ttl)
	if err != nil {
		return Session{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	m.mu.Lock()
	s := base
	m.sessions[s.ID] = &s
	m.mu.Unlock()
	return base, token, nil
}

// Login binds an employee to a fresh session. The previous session, if any,
// is destroyed and its admin override carried over.
func (m *Manager) Login(previousID string, emp models.Employee) (Session, string, error) {
	override := false
	if previousID != "" {
		m.mu.Lock()
		if prev, ok := m.sessions[previousID]; ok {
			override = prev.AdminOverride
			delete(m.sessions, previousID)
		}
		m.mu.Unlock()
	}
	return m.create(Session{
		EmployeeCode:  emp.EmployeeCode,
		Name:          emp.Name,
		Designation:   emp.Designation,
		AdminOverride: override,
	})
}

// Logout drops the identity but keeps the session and its override.
func (m *Manager) Logout(id string) error {
	return m.update(id, func(s *Session) {
		s.EmployeeCode = ""
		s.Name = ""
		s.Designation = ""
	})
}

func (m *Manager) GrantOverride(id string) error {
	return m.update(id, func(s *Session) { s.AdminOverride = true })
}

func (m *Manager) update(id string, fn func(*Session)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNoSession
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, id)
		return ErrExpired
	}
	fn(s)
	return nil
}

// Lookup resolves a token to a copy of its live session.
func (m *Manager) Lookup(token string) (Session, error) {
	id, err := m.maker.VerifyToken(token)
	if err != nil {
		return Session{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNoSession
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, id)
		return Session{}, ErrExpired
	}
	return *s, nil
}

func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Sweep removes expired sessions and returns how many were dropped.
func (m *Manager) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

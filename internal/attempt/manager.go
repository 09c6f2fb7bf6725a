package attempt

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("attempt not found")
	ErrInProgress = errors.New("another attempt is already in progress")
)

// Manager is the in-memory registry of live attempts. A student holds at
// most one active attempt at a time; discarding or submitting releases
// the slot. Attempts are never persisted — an abandoned attempt simply
// disappears with the process, which is the intended cancellation model.
type Manager struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*Attempt
	byStudent map[int]uuid.UUID
}

// NewManager creates an empty attempt registry.
func NewManager() *Manager {
	return &Manager{
		byID:      make(map[uuid.UUID]*Attempt),
		byStudent: make(map[int]uuid.UUID),
	}
}

// Register adds an attempt and arms its countdown. Fails with
// ErrInProgress if the student already has a live attempt.
func (m *Manager) Register(a *Attempt) error {
	m.mu.Lock()
	if _, busy := m.byStudent[a.StudentID()]; busy {
		m.mu.Unlock()
		return ErrInProgress
	}
	m.byID[a.ID()] = a
	m.byStudent[a.StudentID()] = a.ID()
	m.mu.Unlock()

	a.StartClock()
	return nil
}

// Get returns the attempt with the given ID.
func (m *Manager) Get(id uuid.UUID) (*Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

// GetForStudent returns the student's live attempt, if any.
func (m *Manager) GetForStudent(studentID int) (*Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byStudent[studentID]
	if !ok {
		return nil, ErrNotFound
	}
	return m.byID[id], nil
}

// Remove drops an attempt from the registry.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return
	}
	delete(m.byID, id)
	if cur, ok := m.byStudent[a.StudentID()]; ok && cur == id {
		delete(m.byStudent, a.StudentID())
	}
}

// Count returns the number of live attempts.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

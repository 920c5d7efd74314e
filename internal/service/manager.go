package service

import (
	"sync"

	"github.com/primal100/pool-stats/internal/engine"
)

// Manager is the registry of live match sessions, keyed by join code.
// In-flight match state lives only here; nothing is persisted until a match
// completes.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	historyDepth int
	team1Label   string
	team2Label   string
}

// NewManager creates a session registry. historyDepth bounds each session's
// undo history; the labels are the defaults for new matches.
func NewManager(historyDepth int, team1Label, team2Label string) *Manager {
	if historyDepth < 1 {
		historyDepth = engine.DefaultHistoryDepth
	}
	return &Manager{
		sessions:     make(map[string]*Session),
		historyDepth: historyDepth,
		team1Label:   team1Label,
		team2Label:   team2Label,
	}
}

// Create registers a new live match under the given join code. Empty labels
// fall back to the configured defaults.
func (m *Manager) Create(code, team1Label, team2Label string) *Session {
	if team1Label == "" {
		team1Label = m.team1Label
	}
	if team2Label == "" {
		team2Label = m.team2Label
	}
	s := NewSession(code, team1Label, team2Label, m.historyDepth)

	m.mu.Lock()
	m.sessions[code] = s
	m.mu.Unlock()
	return s
}

// Get looks up a live match by join code.
func (m *Manager) Get(code string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[code]
	return s, ok
}

// Exists reports whether a join code is already taken.
func (m *Manager) Exists(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[code]
	return ok
}

// Remove drops a live match from the registry.
func (m *Manager) Remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, code)
}

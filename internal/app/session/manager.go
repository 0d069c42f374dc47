/*
Package session keeps the interview state of every open browser session in memory.

The Manager maps session IDs to interview.State, serializes actions per session so one browser
runs one action at a time, and evicts sessions that have been idle longer than the configured TTL.
*/
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"interviewbot/internal/app/interview"
	"interviewbot/internal/pkg/logx"
	"interviewbot/internal/pkg/randx"
)

// entry is one browser session.
type entry struct {
	// mu serializes actions for this session.
	mu sync.Mutex

	state interview.State

	// lastSeen is guarded by Manager.mu.
	lastSeen time.Time
}

// Manager is the registry of live browser sessions.
type Manager struct {
	// sessions stores all live sessions, keyed by session ID.
	sessions map[string]*entry

	// mu protects sessions and every entry's lastSeen.
	mu sync.Mutex

	ttl   time.Duration
	sweep time.Duration

	stop chan struct{}
	wg   sync.WaitGroup

	now    func() time.Time
	logger zerolog.Logger
}

// NewManager constructs a Manager and starts its cleanup loop.
// Sessions idle for longer than ttl are dropped.
func NewManager(ttl time.Duration) *Manager {
	sweep := ttl / 4
	if sweep < time.Second {
		sweep = time.Second
	}

	m := &Manager{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		sweep:    sweep,
		stop:     make(chan struct{}),
		now:      time.Now,
		logger:   logx.Component("session"),
	}

	m.wg.Add(1)
	go m.runCleanupLoop()

	return m
}

// runCleanupLoop evicts idle sessions until Shutdown is called.
func (m *Manager) runCleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.sweep)
	defer ticker.Stop()

	m.logger.Info().Dur("ttl", m.ttl).Msg("Cleanup loop started.")

	for {
		select {
		case <-ticker.C:
			m.evictIdle()
		case <-m.stop:
			m.logger.Info().Msg("Cleanup loop stopped.")
			return
		}
	}
}

// evictIdle removes every session not seen within the TTL and returns how many were removed.
func (m *Manager) evictIdle() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	removed := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		m.logger.Debug().Int("removed", removed).Int("remaining", len(m.sessions)).Msg("Idle sessions evicted.")
	}
	return removed
}

// Create registers a fresh logged-out session and returns its ID.
func (m *Manager) Create() string {
	id := randx.SessionID()

	m.mu.Lock()
	m.sessions[id] = &entry{lastSeen: m.now()}
	m.mu.Unlock()

	return id
}

// Exists reports whether id names a live session.
func (m *Manager) Exists(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.sessions[id]
	return ok
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// touch returns the entry for id, creating an empty one if needed, and marks it as seen.
func (m *Manager) touch(id string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		e = &entry{}
		m.sessions[id] = e
	}
	e.lastSeen = m.now()
	return e
}

// State returns a snapshot of the session's state. Unknown IDs start a fresh session.
func (m *Manager) State(id string) interview.State {
	e := m.touch(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Do runs fn against the session's state while holding the session lock and stores
// the state it returns. When fn fails the stored state is left unchanged.
func (m *Manager) Do(id string, fn func(interview.State) (interview.State, error)) (interview.State, error) {
	e := m.touch(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := fn(e.state)
	if err != nil {
		return e.state, err
	}
	e.state = next

	m.mu.Lock()
	m.sessions[id] = e
	e.lastSeen = m.now()
	m.mu.Unlock()

	return next, nil
}

// Shutdown stops the cleanup loop and drops every session.
func (m *Manager) Shutdown() {
	m.logger.Info().Msg("Shutting down session manager...")

	close(m.stop)
	m.wg.Wait()

	m.mu.Lock()
	m.sessions = make(map[string]*entry)
	m.mu.Unlock()

	m.logger.Info().Msg("Session manager shutdown complete.")
}

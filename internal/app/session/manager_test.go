package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewbot/internal/app/interview"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m := NewManager(ttl)
	t.Cleanup(m.Shutdown)
	return m
}

func TestManager_CreateStartsLoggedOut(t *testing.T) {
	m := newTestManager(t, time.Hour)

	id := m.Create()

	assert.True(t, m.Exists(id))
	assert.False(t, m.State(id).LoggedIn())
}

func TestManager_DoStoresState(t *testing.T) {
	m := newTestManager(t, time.Hour)
	id := m.Create()

	_, err := m.Do(id, func(s interview.State) (interview.State, error) {
		s.Username = "alice"
		return s, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", m.State(id).Username)
}

func TestManager_DoErrorKeepsState(t *testing.T) {
	m := newTestManager(t, time.Hour)
	id := m.Create()
	boom := errors.New("boom")

	got, err := m.Do(id, func(s interview.State) (interview.State, error) {
		s.Username = "mallory"
		return s, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got.Username)
	assert.Empty(t, m.State(id).Username)
}

func TestManager_DoSerializesPerSession(t *testing.T) {
	m := newTestManager(t, time.Hour)
	id := m.Create()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Do(id, func(s interview.State) (interview.State, error) {
				s.Questions = append(s.Questions, "q")
				return s, nil
			})
		}()
	}
	wg.Wait()

	assert.Len(t, m.State(id).Questions, 50)
}

func TestManager_UnknownIDStartsFresh(t *testing.T) {
	m := newTestManager(t, time.Hour)

	assert.False(t, m.Exists("missing"))
	assert.Equal(t, interview.State{}, m.State("missing"))
	assert.True(t, m.Exists("missing"))
}

func TestManager_EvictIdle(t *testing.T) {
	m := newTestManager(t, time.Minute)
	now := time.Now()
	m.now = func() time.Time { return now }

	stale := m.Create()
	now = now.Add(2 * time.Minute)
	fresh := m.Create()

	assert.Equal(t, 1, m.evictIdle())
	assert.False(t, m.Exists(stale))
	assert.True(t, m.Exists(fresh))
	assert.Equal(t, 1, m.Len())
}

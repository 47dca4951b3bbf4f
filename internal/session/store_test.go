package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpilot-ai/chatbot-platform/internal/model"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	s := NewStore()

	first, created := s.GetOrCreate("sess-1", "real-estate-demo")
	require.True(t, created)
	require.NotNil(t, first)
	assert.Equal(t, model.StageInitial, first.State.Stage)
	assert.Equal(t, "real-estate-demo", first.State.ClientID)

	second, created := s.GetOrCreate("sess-1", "real-estate-demo")
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, 1, s.Len())
}

func TestHistoryAccumulates(t *testing.T) {
	s := NewStore()
	sess, _ := s.GetOrCreate("sess-1", "default")

	sess.Lock()
	sess.State.AppendMessage("hello", model.SenderUser, time.Now())
	sess.State.AppendMessage("hi there", model.SenderBot, time.Now())
	sess.Unlock()

	sess.Lock()
	sess.State.AppendMessage("second turn", model.SenderUser, time.Now())
	sess.Unlock()

	got, ok := s.Get("sess-1")
	require.True(t, ok)
	require.Len(t, got.State.History, 3)
	assert.Equal(t, model.SenderUser, got.State.History[0].Sender)
	assert.Equal(t, model.SenderBot, got.State.History[1].Sender)
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("sess-%d", n)
			sess, _ := s.GetOrCreate(id, "default")
			sess.Lock()
			sess.State.AppendMessage("msg", model.SenderUser, time.Now())
			sess.State.MessageCount++
			sess.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	for i := 0; i < 50; i++ {
		sess, ok := s.Get(fmt.Sprintf("sess-%d", i))
		require.True(t, ok)
		assert.Equal(t, 1, sess.State.MessageCount)
	}
}

func TestSameSessionTurnsSerialize(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, _ := s.GetOrCreate("sess-1", "default")
			sess.Lock()
			sess.State.MessageCount++
			sess.State.AppendMessage("msg", model.SenderUser, time.Now())
			sess.Unlock()
		}()
	}
	wg.Wait()

	sess, ok := s.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, 100, sess.State.MessageCount)
	assert.Len(t, sess.State.History, 100)
	assert.Equal(t, 1, s.Len())
}

func TestReapEvictsOnlyIdleSessions(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.clock = func() time.Time { return now }

	stale, _ := s.GetOrCreate("stale", "default")
	stale.Lock()
	stale.Touch(now.Add(-2 * time.Hour))
	stale.Unlock()

	fresh, _ := s.GetOrCreate("fresh", "default")
	fresh.Lock()
	fresh.Touch(now.Add(-5 * time.Minute))
	fresh.Unlock()

	reaped := s.Reap(time.Hour)

	assert.Equal(t, 1, reaped)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("stale")
	assert.False(t, ok)
	_, ok = s.Get("fresh")
	assert.True(t, ok)
}

func TestReapSkipsSessionMidTurn(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.clock = func() time.Time { return now }

	busy, _ := s.GetOrCreate("busy", "default")
	busy.Lock()
	busy.Touch(now.Add(-2 * time.Hour))

	stale, _ := s.GetOrCreate("stale", "default")
	stale.Lock()
	stale.Touch(now.Add(-2 * time.Hour))
	stale.Unlock()

	// A turn in flight must neither block the sweep nor stall lookups
	// for other sessions.
	done := make(chan int, 1)
	go func() { done <- s.Reap(time.Hour) }()

	var reaped int
	select {
	case reaped = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Reap blocked on a session mid-turn")
	}
	assert.Equal(t, 1, reaped)

	_, ok := s.Get("busy")
	assert.True(t, ok)
	_, ok = s.Get("stale")
	assert.False(t, ok)

	busy.Unlock()
	assert.Equal(t, 1, s.Reap(time.Hour))
	assert.Equal(t, 0, s.Len())
}

func TestReapEmptyStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Reap(time.Hour))
}

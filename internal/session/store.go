// Package session provides the in-memory conversation session store.
package session

import (
	"sync"
	"time"

	"github.com/leadpilot-ai/chatbot-platform/internal/model"
)

const shardCount = 16

// Session wraps one conversation's state with its own mutex so concurrent
// turns on the same session id serialize. The store's shard locks are only
// held for map access, never across a turn.
type Session struct {
	mu    sync.Mutex
	State model.ConversationState
}

// Lock acquires the per-session mutex for the duration of a turn.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session mutex.
func (s *Session) Unlock() { s.mu.Unlock() }

// Touch refreshes the last-activity timestamp. Callers must hold the
// session lock.
func (s *Session) Touch(now time.Time) {
	s.State.LastActivity = now
}

type shard struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// Store is a sharded, concurrency-safe map of session id to conversation
// state. Entries are only ever evicted for idleness, never for capacity.
type Store struct {
	shards [shardCount]*shard
	clock  func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	s := &Store{clock: time.Now}
	for i := range s.shards {
		s.shards[i] = &shard{sessions: make(map[string]*Session)}
	}
	return s
}

// fnv-1a, inlined to keep the hot path allocation-free.
func shardIndex(key string) int {
	var h uint32 = 2166136261
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return int(h % shardCount)
}

// GetOrCreate returns the session for the given id, creating it with initial
// state on first use. The second return reports whether it was created.
func (s *Store) GetOrCreate(sessionID, clientID string) (*Session, bool) {
	sh := s.shards[shardIndex(sessionID)]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if sess, ok := sh.sessions[sessionID]; ok {
		return sess, false
	}

	sess := &Session{
		State: model.ConversationState{
			SessionID:    sessionID,
			ClientID:     clientID,
			Stage:        model.StageInitial,
			LastActivity: s.clock(),
		},
	}
	sh.sessions[sessionID] = sess
	return sess, true
}

// Get returns the session for the given id if it exists.
func (s *Store) Get(sessionID string) (*Session, bool) {
	sh := s.shards[shardIndex(sessionID)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sess, ok := sh.sessions[sessionID]
	return sess, ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		total += len(sh.sessions)
		sh.mu.Unlock()
	}
	return total
}

// Reap removes every session idle for longer than maxIdle and returns how
// many were evicted. The shard lock is held only to snapshot and to delete;
// idleness is checked per session outside it, so a session mid-turn never
// stalls lookups for the rest of its shard.
func (s *Store) Reap(maxIdle time.Duration) int {
	cutoff := s.clock().Add(-maxIdle)
	reaped := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		candidates := make(map[string]*Session, len(sh.sessions))
		for id, sess := range sh.sessions {
			candidates[id] = sess
		}
		sh.mu.Unlock()

		for id, sess := range candidates {
			// A session with a turn in flight is live by definition.
			if !sess.mu.TryLock() {
				continue
			}
			idle := sess.State.LastActivity.Before(cutoff)
			sess.mu.Unlock()
			if !idle {
				continue
			}
			sh.mu.Lock()
			if cur, ok := sh.sessions[id]; ok && cur == sess {
				delete(sh.sessions, id)
				reaped++
			}
			sh.mu.Unlock()
		}
	}
	return reaped
}

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps live sessions in memory and evicts the ones idle past the TTL.
type Store struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	ttl        time.Duration
	resetDelay time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewStore builds a store; ttl bounds session idleness, resetDelay is how long
// the copied flag stays raised.
func NewStore(ttl, resetDelay time.Duration) *Store {
	s := &Store{
		sessions:   make(map[string]*Session),
		ttl:        ttl,
		resetDelay: resetDelay,
		stop:       make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

// Create registers a new session and returns it.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.resetDelay)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session with the given id, or nil.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// Remove closes and forgets the session. It reports whether the id was known.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		sess.Close()
	}
	return ok
}

// Stop terminates the eviction loop.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) janitor() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.evictIdle(now)
		}
	}
}

func (s *Store) evictIdle(now time.Time) {
	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			delete(s.sessions, id)
			expired = append(expired, sess)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}
}

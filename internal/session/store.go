package session

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
)

var ErrNotFound = errors.New("session not found")

// Session owns one controller. All access goes through [Store.Do], which
// serialises callers.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	ctl      *controller.Controller
	lastUsed time.Time
}

// Store keeps live sessions in memory. Sessions idle for longer than the TTL
// are dropped by [Store.Sweep].
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func newID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	b := [16]byte(u)
	return base64.RawURLEncoding.EncodeToString(b[:]), nil
}

// Create registers ctl under a fresh random id.
func (s *Store) Create(ctl *controller.Controller) (*Session, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	now := s.now()
	session := &Session{
		ID:        id,
		CreatedAt: now,
		ctl:       ctl,
		lastUsed:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = session
	return session, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Deletes id from store without checking if it existed.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Do runs fn with exclusive access to the controller of session id and marks
// the session as used.
func (s *Store) Do(id string, fn func(*controller.Controller) error) error {
	session, err := s.Get(id)
	if err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastUsed = s.now()
	return fn(session.ctl)
}

// Sweep drops sessions idle for longer than the TTL and returns how many were
// dropped.
func (s *Store) Sweep() int {
	deadline := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, session := range s.sessions {
		session.mu.Lock()
		idle := session.lastUsed.Before(deadline)
		session.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done. onSweep, if not nil, gets the
// number of dropped sessions after each pass.
func (s *Store) Run(ctx context.Context, interval time.Duration, onSweep func(int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n := s.Sweep()
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}

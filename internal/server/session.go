package server

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goliatone/go-signupform/pkg/state"
)

// session is one visitor's form instance.
type session struct {
	id        string
	csrf      string
	container *state.Container
}

// sessionStore keeps visitor sessions in two bounded LRU caches. Sessions
// issued to a first GET wait in pending; a POST carrying a valid form token
// promotes them to active. Anonymous traffic therefore only evicts other
// pending sessions, never a visitor who has submitted. Evicted visitors start
// over with an empty form.
type sessionStore struct {
	active       *lru.Cache[string, *session]
	pending      *lru.Cache[string, *session]
	newContainer func(id string) *state.Container
}

func newSessionStore(limit int, newContainer func(id string) *state.Container, onEvict func(id string)) (*sessionStore, error) {
	active, err := lru.NewWithEvict[string, *session](limit, func(id string, _ *session) {
		if onEvict != nil {
			onEvict(id)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("server: session store: %w", err)
	}
	pending, err := lru.New[string, *session](limit)
	if err != nil {
		return nil, fmt.Errorf("server: pending session store: %w", err)
	}
	return &sessionStore{active: active, pending: pending, newContainer: newContainer}, nil
}

func (s *sessionStore) get(id string) (*session, bool) {
	if id == "" {
		return nil, false
	}
	if sess, ok := s.active.Get(id); ok {
		return sess, true
	}
	return s.pending.Get(id)
}

// create starts a pending session.
func (s *sessionStore) create() *session {
	id := uuid.NewString()
	sess := &session{
		id:        id,
		csrf:      uuid.NewString(),
		container: s.newContainer(id),
	}
	s.pending.Add(id, sess)
	return sess
}

// promote moves sess into the active cache. Active sessions are left alone.
func (s *sessionStore) promote(sess *session) {
	if sess == nil || s.active.Contains(sess.id) {
		return
	}
	s.pending.Remove(sess.id)
	s.active.Add(sess.id, sess)
}

// len counts active sessions.
func (s *sessionStore) len() int {
	return s.active.Len()
}

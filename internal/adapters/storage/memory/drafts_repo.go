package memory

import (
	"context"
	"sync"
	"time"

	"animal-registry/internal/domain/drafts"
)

type draftEntry struct {
	session   drafts.Session
	expiresAt time.Time
}

type draftStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	byID map[string]draftEntry
}

// NewDraftStore guarda sesiones en memoria. ttl <= 0 significa sin vencimiento.
// Cada Save renueva el vencimiento.
func NewDraftStore(ttl time.Duration) drafts.Store {
	return &draftStore{
		ttl:  ttl,
		now:  time.Now,
		byID: make(map[string]draftEntry),
	}
}

func (s *draftStore) Save(ctx context.Context, sess drafts.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exp time.Time
	if s.ttl > 0 {
		exp = s.now().Add(s.ttl)
	}
	s.byID[sess.ID] = draftEntry{session: sess, expiresAt: exp}
	return nil
}

func (s *draftStore) Get(ctx context.Context, id string) (drafts.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return drafts.Session{}, drafts.ErrNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.byID, id)
		return drafts.Session{}, drafts.ErrNotFound
	}
	return e.session, nil
}

func (s *draftStore) Take(ctx context.Context, id string) (drafts.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return drafts.Session{}, drafts.ErrNotFound
	}
	delete(s.byID, id)
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		return drafts.Session{}, drafts.ErrNotFound
	}
	return e.session, nil
}

func (s *draftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return drafts.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

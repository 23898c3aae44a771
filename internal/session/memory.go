package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps session tokens in a mutex-guarded map. Suitable for
// a single-process deployment; tokens do not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = s.now()
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Validate(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt, ok := s.sessions[token]
	if !ok {
		return false, nil
	}
	if s.now().Sub(createdAt) > s.ttl {
		delete(s.sessions, token)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

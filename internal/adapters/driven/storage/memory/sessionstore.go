package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore keeps the shopper session in memory for the lifetime of the process.
type SessionStore struct {
	mu     sync.RWMutex
	cartID string
	token  *domain.CustomerToken
}

// NewSessionStore creates an empty in-memory session.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// CartID returns the stored cart id.
func (s *SessionStore) CartID(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartID, nil
}

// SetCartID stores the cart id.
func (s *SessionStore) SetCartID(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartID = cartID
	return nil
}

// Token returns a copy of the stored customer token.
func (s *SessionStore) Token(_ context.Context) (*domain.CustomerToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return nil, nil
	}
	t := *s.token
	return &t, nil
}

// SetToken stores a copy of the customer token.
func (s *SessionStore) SetToken(_ context.Context, token *domain.CustomerToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == nil {
		s.token = nil
		return nil
	}
	t := *token
	s.token = &t
	return nil
}

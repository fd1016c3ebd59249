// internal/application/session_service.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
	"github.com/egokay/storefront.git/pkg/auth"
)

const sessionKeyPrefix = "session:"

// SessionState is the per-session mutable state owned by the shell: the
// identity, the cart, and the per-product quantity selections. The cart is
// never persisted; identity and quantity selections survive a restart via
// the cache. Concurrent requests share one state, so the quantities map is
// only reachable through the locked accessors.
type SessionState struct {
	Session domain.Session
	Cart    *domain.Cart

	mu         sync.Mutex
	quantities map[int64]int64
}

// Quantity returns the remembered quantity-selector value for a product,
// zero when none was saved.
func (s *SessionState) Quantity(productID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantities[productID]
}

// SetQuantity records a quantity-selector choice.
func (s *SessionState) SetQuantity(productID, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantities[productID] = quantity
}

func (s *SessionState) quantitiesSnapshot() map[int64]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]int64, len(s.quantities))
	for id, quantity := range s.quantities {
		out[id] = quantity
	}
	return out
}

type persistedSession struct {
	UserID     int64           `json:"user_id"`
	Username   string          `json:"username"`
	CreatedAt  time.Time       `json:"created_at"`
	Quantities map[int64]int64 `json:"quantities,omitempty"`
}

// SessionService authenticates against the remote store and tracks live
// sessions keyed by the store-issued bearer token.
type SessionService struct {
	authPort ports.AuthPort
	cache    ports.CachePort

	mu       sync.RWMutex
	sessions map[string]*SessionState
}

func NewSessionService(authPort ports.AuthPort, cache ports.CachePort) *SessionService {
	return &SessionService{
		authPort: authPort,
		cache:    cache,
		sessions: make(map[string]*SessionState),
	}
}

func (s *SessionService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password are required")
	}
	return s.authPort.Register(ctx, username, email, password)
}

// Login exchanges credentials for a store token and opens a session.
func (s *SessionService) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	if identifier == "" || password == "" {
		return nil, errors.New("identifier and password are required")
	}
	token, user, err := s.authPort.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	sess := domain.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now(),
	}
	state := &SessionState{
		Session:    sess,
		Cart:       domain.NewCart(),
		quantities: make(map[int64]int64),
	}
	s.mu.Lock()
	s.sessions[token] = state
	s.mu.Unlock()
	s.persist(ctx, state)
	return &sess, nil
}

// Resolve maps a bearer token to its session state. Unknown tokens are
// restored from the cache, or rebuilt from the remote store as a last
// resort; either way the restored session starts with an empty cart.
func (s *SessionService) Resolve(ctx context.Context, token string) (*SessionState, error) {
	if token == "" {
		return nil, ErrSessionExpired
	}
	s.mu.RLock()
	state, ok := s.sessions[token]
	s.mu.RUnlock()
	if ok {
		return state, nil
	}

	if claims, err := auth.ParseToken(token); err == nil && claims.Expired(time.Now()) {
		return nil, ErrSessionExpired
	}

	state = s.restore(ctx, token)
	if state == nil {
		user, err := s.authPort.Me(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("resolve session: %w", err)
		}
		state = &SessionState{
			Session: domain.Session{
				Token:     token,
				UserID:    user.ID,
				Username:  user.Username,
				CreatedAt: time.Now(),
			},
			Cart:       domain.NewCart(),
			quantities: make(map[int64]int64),
		}
		s.persist(ctx, state)
	}

	s.mu.Lock()
	if existing, ok := s.sessions[token]; ok {
		state = existing
	} else {
		s.sessions[token] = state
	}
	s.mu.Unlock()
	return state, nil
}

// Logout drops the session and its cart.
func (s *SessionService) Logout(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	if err := s.cache.DeleteByPrefix(ctx, sessionKeyPrefix+token); err != nil {
		log.Printf("failed to drop persisted session: %v", err)
	}
}

// SaveQuantity records a quantity-selector choice and persists it.
func (s *SessionService) SaveQuantity(ctx context.Context, state *SessionState, productID, quantity int64) {
	state.SetQuantity(productID, quantity)
	s.persist(ctx, state)
}

func (s *SessionService) persist(ctx context.Context, state *SessionState) {
	record := persistedSession{
		UserID:     state.Session.UserID,
		Username:   state.Session.Username,
		CreatedAt:  state.Session.CreatedAt,
		Quantities: state.quantitiesSnapshot(),
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+state.Session.Token, record); err != nil {
		log.Printf("failed to persist session: %v", err)
	}
}

func (s *SessionService) restore(ctx context.Context, token string) *SessionState {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return nil
	}
	var record persistedSession
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("failed to decode persisted session: %v", err)
		return nil
	}
	quantities := record.Quantities
	if quantities == nil {
		quantities = make(map[int64]int64)
	}
	return &SessionState{
		Session: domain.Session{
			Token:     token,
			UserID:    record.UserID,
			Username:  record.Username,
			CreatedAt: record.CreatedAt,
		},
		Cart:       domain.NewCart(),
		quantities: quantities,
	}
}

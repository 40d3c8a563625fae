package store

import (
	"context"
	"errors"
	"sync"

	"levoja-backoffice/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
)

// UserStore defines the interface for operator account access
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewUserStore creates an empty user store
func NewUserStore() UserStore {
	return &userStore{users: make(map[string]*domain.User)}
}

func (s *userStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return ErrUserAlreadyExists
	}
	s.users[user.Email] = user
	return nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

// RefreshTokenStore defines the interface for session token access
type RefreshTokenStore interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

type refreshTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]*domain.RefreshToken
}

// NewRefreshTokenStore creates an empty refresh token store
func NewRefreshTokenStore() RefreshTokenStore {
	return &refreshTokenStore{tokens: make(map[string]*domain.RefreshToken)}
}

func (s *refreshTokenStore) Create(ctx context.Context, token *domain.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token.Token] = token
	return nil
}

func (s *refreshTokenStore) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refreshToken, exists := s.tokens[token]
	if !exists {
		return nil, ErrRefreshTokenNotFound
	}
	if refreshToken.Revoked {
		return nil, ErrRefreshTokenRevoked
	}
	return refreshToken, nil
}

func (s *refreshTokenStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	refreshToken, exists := s.tokens[token]
	if !exists {
		return ErrRefreshTokenNotFound
	}
	refreshToken.Revoked = true
	return nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
)

// TokenRepository keeps tokens in process memory, every operation is atomic under one lock.
type TokenRepository struct {
	mu     sync.Mutex
	tokens map[domain.TokenID]domain.Token
	keys   map[string]domain.TokenID
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{
		tokens: make(map[domain.TokenID]domain.Token),
		keys:   make(map[string]domain.TokenID),
	}
}

func (r *TokenRepository) Create(_ context.Context, token *domain.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[token.ID]; ok {
		return domain.ErrTokenAlreadyExists
	}
	if _, ok := r.keys[token.Key]; ok {
		return domain.ErrTokenAlreadyExists
	}

	r.tokens[token.ID] = *token
	r.keys[token.Key] = token.ID
	return nil
}

func (r *TokenRepository) FindOne(_ context.Context, id domain.TokenID) (*domain.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[id]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}

	return &token, nil
}

func (r *TokenRepository) Renew(_ context.Context, id domain.TokenID, now, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[id]
	if !ok || token.IsExpiredAt(now) {
		return domain.ErrTokenNotFound
	}

	if expiresAt.After(token.ExpiresAt) {
		token.ExpiresAt = expiresAt
		r.tokens[id] = token
	}
	return nil
}

func (r *TokenRepository) Delete(_ context.Context, spec domain.DeleteTokenSpecification) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[spec.ID]
	if !ok {
		return false, nil
	}
	if spec.OwnerID != nil && token.OwnerID != *spec.OwnerID {
		return false, nil
	}
	if spec.ExpiredAt != nil && !token.IsExpiredAt(*spec.ExpiredAt) {
		return false, nil
	}

	delete(r.tokens, spec.ID)
	delete(r.keys, token.Key)
	return true, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/hawk-session-service/internal/session/app/session"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
	pkgtime "github.com/klwxsrx/hawk-session-service/pkg/time"
)

const (
	DefaultRenewalWindow = 24 * time.Hour

	maxIssueAttempts = 3
)

type (
	SessionIssuer interface {
		Issue(ctx context.Context, username, password string) (TokenPair, error)
	}

	TokenPair struct {
		TokenID   domain.TokenID
		Key       string
		ExpiresAt time.Time
	}

	issuer struct {
		accounts       AccountLookup
		tokenRepo      domain.TokenRepository
		tokens         session.TokenGenerator
		eventPublisher EventPublisher
		clock          pkgtime.Clock
		renewalWindow  time.Duration
		logger         log.Logger
	}
)

func NewSessionIssuer(
	accounts AccountLookup,
	tokenRepo domain.TokenRepository,
	tokens session.TokenGenerator,
	eventPublisher EventPublisher,
	clock pkgtime.Clock,
	renewalWindow time.Duration,
	logger log.Logger,
) SessionIssuer {
	if renewalWindow <= 0 {
		renewalWindow = DefaultRenewalWindow
	}

	return issuer{
		accounts:       accounts,
		tokenRepo:      tokenRepo,
		tokens:         tokens,
		eventPublisher: eventPublisher,
		clock:          clock,
		renewalWindow:  renewalWindow,
		logger:         logger,
	}
}

func (s issuer) Issue(ctx context.Context, username, password string) (TokenPair, error) {
	account, err := s.accounts.Verify(ctx, username, password)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return TokenPair{}, ErrUnknownCredentials
	}
	if err != nil {
		return TokenPair{}, newStorageError("verify account", err)
	}
	if !account.IsActive {
		return TokenPair{}, ErrNotActive
	}

	expiresAt := s.clock.Now(ctx).Add(s.renewalWindow)
	for range maxIssueAttempts {
		generated, err := s.tokens.Generate()
		if err != nil {
			return TokenPair{}, fmt.Errorf("generate token: %w", err)
		}

		token := &domain.Token{
			ID:        generated.ID,
			OwnerID:   account.ID,
			Key:       generated.Key,
			ExpiresAt: expiresAt,
		}
		err = s.tokenRepo.Create(ctx, token)
		if errors.Is(err, domain.ErrTokenAlreadyExists) {
			continue
		}
		if err != nil {
			return TokenPair{}, newStorageError("create token", err)
		}

		publishEvents(ctx, s.eventPublisher, s.logger, domain.EventSessionIssued{
			EventID:   uuid.New(),
			TokenID:   token.ID,
			OwnerID:   token.OwnerID,
			ExpiresAt: token.ExpiresAt,
		})
		return TokenPair{
			TokenID:   token.ID,
			Key:       token.Key,
			ExpiresAt: token.ExpiresAt,
		}, nil
	}

	return TokenPair{}, newStorageError("create token", domain.ErrTokenAlreadyExists)
}

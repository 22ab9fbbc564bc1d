//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "CredentialResolver=CredentialResolver"
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	"github.com/klwxsrx/hawk-session-service/pkg/hawk"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
	pkgtime "github.com/klwxsrx/hawk-session-service/pkg/time"
)

type (
	CredentialResolver interface {
		// Resolve renews the token on success, every failure leaves its expiry untouched.
		Resolve(ctx context.Context, tokenID string) (Credential, error)
	}

	Credential struct {
		TokenID     domain.TokenID
		Key         string
		Algorithm   string
		Principal   string
		PrincipalID domain.AccountID
	}

	resolver struct {
		tokenRepo      domain.TokenRepository
		accounts       AccountLookup
		eventPublisher EventPublisher
		clock          pkgtime.Clock
		renewalWindow  time.Duration
		logger         log.Logger
	}
)

func NewCredentialResolver(
	tokenRepo domain.TokenRepository,
	accounts AccountLookup,
	eventPublisher EventPublisher,
	clock pkgtime.Clock,
	renewalWindow time.Duration,
	logger log.Logger,
) CredentialResolver {
	if renewalWindow <= 0 {
		renewalWindow = DefaultRenewalWindow
	}

	return resolver{
		tokenRepo:      tokenRepo,
		accounts:       accounts,
		eventPublisher: eventPublisher,
		clock:          clock,
		renewalWindow:  renewalWindow,
		logger:         logger,
	}
}

func (r resolver) Resolve(ctx context.Context, rawTokenID string) (Credential, error) {
	tokenID, err := domain.ParseTokenID(rawTokenID)
	if err != nil {
		return Credential{}, ErrUnknownToken
	}

	token, err := r.tokenRepo.FindOne(ctx, tokenID)
	if errors.Is(err, domain.ErrTokenNotFound) {
		return Credential{}, ErrUnknownToken
	}
	if err != nil {
		return Credential{}, newStorageError("find token", err)
	}

	account, err := r.accounts.GetByID(ctx, token.OwnerID)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return Credential{}, ErrNotActive
	}
	if err != nil {
		return Credential{}, newStorageError("get account", err)
	}
	if !account.IsActive {
		return Credential{}, ErrNotActive
	}

	now := r.clock.Now(ctx)
	if token.IsExpiredAt(now) {
		r.purgeExpired(ctx, token, now)
		return Credential{}, ErrExpiredToken
	}

	err = r.tokenRepo.Renew(ctx, token.ID, now, now.Add(r.renewalWindow))
	if errors.Is(err, domain.ErrTokenNotFound) {
		return Credential{}, ErrUnknownToken
	}
	if err != nil {
		return Credential{}, newStorageError("renew token", err)
	}

	return Credential{
		TokenID:     token.ID,
		Key:         token.Key,
		Algorithm:   hawk.AlgorithmSHA256,
		Principal:   account.Username,
		PrincipalID: account.ID,
	}, nil
}

func (r resolver) purgeExpired(ctx context.Context, token *domain.Token, now time.Time) {
	deleted, err := r.tokenRepo.Delete(ctx, domain.DeleteTokenSpecification{
		ID:        token.ID,
		ExpiredAt: &now,
	})
	if err != nil {
		r.logger.
			WithField("tokenID", token.ID.String()).
			WithError(err).
			Warn(ctx, "failed to purge expired token")
		return
	}
	if !deleted {
		return
	}

	publishEvents(ctx, r.eventPublisher, r.logger, domain.EventSessionExpired{
		EventID: uuid.New(),
		TokenID: token.ID,
		OwnerID: token.OwnerID,
	})
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

type (
	SessionRevoker interface {
		// Revoke succeeds for unknown tokens and tokens of other owners, nothing is deleted then.
		Revoke(ctx context.Context, tokenID domain.TokenID, ownerID domain.AccountID) error
	}

	revoker struct {
		tokenRepo      domain.TokenRepository
		eventPublisher EventPublisher
		logger         log.Logger
	}
)

func NewSessionRevoker(
	tokenRepo domain.TokenRepository,
	eventPublisher EventPublisher,
	logger log.Logger,
) SessionRevoker {
	return revoker{
		tokenRepo:      tokenRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s revoker) Revoke(ctx context.Context, tokenID domain.TokenID, ownerID domain.AccountID) error {
	deleted, err := s.tokenRepo.Delete(ctx, domain.DeleteTokenSpecification{
		ID:      tokenID,
		OwnerID: &ownerID,
	})
	if err != nil {
		return newStorageError("delete token", err)
	}
	if !deleted {
		return nil
	}

	publishEvents(ctx, s.eventPublisher, s.logger, domain.EventSessionRevoked{
		EventID: uuid.New(),
		TokenID: tokenID,
		OwnerID: ownerID,
	})
	return nil
}

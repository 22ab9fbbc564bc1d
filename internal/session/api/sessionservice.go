package api

import (
	"context"

	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
)

type SessionService interface {
	Issue(ctx context.Context, username, password string) (service.TokenPair, error)
	Revoke(ctx context.Context, tokenID domain.TokenID, ownerID domain.AccountID) error
}

// CredentialService is the lookup behind Hawk request verification.
type CredentialService interface {
	Resolve(ctx context.Context, tokenID string) (service.Credential, error)
}

package auth

import (
	"github.com/google/uuid"

	"github.com/klwxsrx/hawk-session-service/pkg/auth"
)

const PrincipalTypeAccount auth.PrincipalType = "account"

// Principal is the account a Hawk request was signed for, TokenID is the session it was signed with.
type Principal struct {
	AccountID uuid.UUID
	TokenID   uuid.UUID
	Username  string
}

func (p Principal) Type() auth.PrincipalType {
	return PrincipalTypeAccount
}

func (p Principal) ID() *string {
	id := p.AccountID.String()
	return &id
}

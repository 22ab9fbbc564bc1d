//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenRepository=TokenRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTokenNotFound      = errors.New("session token not found")
	ErrTokenAlreadyExists = errors.New("session token already exists")
)

type (
	Token struct {
		ID        TokenID
		OwnerID   AccountID
		Key       string
		ExpiresAt time.Time
	}

	TokenRepository interface {
		// Create fails with ErrTokenAlreadyExists when the id or the key is taken.
		Create(context.Context, *Token) error
		FindOne(context.Context, TokenID) (*Token, error)
		// Renew moves expiry to max(current, expiresAt) if the token is still valid at now,
		// ErrTokenNotFound otherwise.
		Renew(ctx context.Context, id TokenID, now, expiresAt time.Time) error
		Delete(context.Context, DeleteTokenSpecification) (deleted bool, err error)
	}

	// DeleteTokenSpecification matches the token by ID and every other non-nil field.
	DeleteTokenSpecification struct {
		ID      TokenID
		OwnerID *AccountID
		// ExpiredAt keeps tokens renewed past the given moment
		ExpiredAt *time.Time
	}

	TokenID struct{ uuid.UUID }
)

func (t Token) IsExpiredAt(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

func ParseTokenID(value string) (TokenID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return TokenID{}, err
	}

	return TokenID{UUID: id}, nil
}

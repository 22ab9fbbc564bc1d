package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errors.New("account not found")

type (
	Account struct {
		ID           AccountID
		Username     string
		PasswordHash string
		IsActive     bool
	}

	// AccountRepository is read-only, accounts are managed outside the service.
	AccountRepository interface {
		FindOne(context.Context, FindAccountSpecification) (*Account, error)
	}

	FindAccountSpecification struct {
		ID       *AccountID
		Username *string
	}

	AccountID struct{ uuid.UUID }
)

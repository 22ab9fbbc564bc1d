package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klwxsrx/hawk-session-service/internal/session/app/encoding"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
)

type (
	AccountLookup interface {
		// Verify returns domain.ErrAccountNotFound for a wrong password as well.
		Verify(ctx context.Context, username, password string) (AccountData, error)
		GetByID(context.Context, domain.AccountID) (AccountData, error)
	}

	AccountData struct {
		ID       domain.AccountID
		Username string
		IsActive bool
	}

	accountLookup struct {
		accountRepo     domain.AccountRepository
		passwordEncoder encoding.PasswordEncoder
	}
)

func NewAccountLookup(
	accountRepo domain.AccountRepository,
	passwordEncoder encoding.PasswordEncoder,
) AccountLookup {
	return accountLookup{
		accountRepo:     accountRepo,
		passwordEncoder: passwordEncoder,
	}
}

func (s accountLookup) Verify(ctx context.Context, username, password string) (AccountData, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return AccountData{}, domain.ErrAccountNotFound
	}

	account, err := s.accountRepo.FindOne(ctx, domain.FindAccountSpecification{Username: &username})
	if errors.Is(err, domain.ErrAccountNotFound) {
		return AccountData{}, err
	}
	if err != nil {
		return AccountData{}, fmt.Errorf("find account by username: %w", err)
	}

	if !s.passwordEncoder.CompareHash(account.PasswordHash, password) {
		return AccountData{}, domain.ErrAccountNotFound
	}

	return toAccountData(account), nil
}

func (s accountLookup) GetByID(ctx context.Context, id domain.AccountID) (AccountData, error) {
	account, err := s.accountRepo.FindOne(ctx, domain.FindAccountSpecification{ID: &id})
	if errors.Is(err, domain.ErrAccountNotFound) {
		return AccountData{}, err
	}
	if err != nil {
		return AccountData{}, fmt.Errorf("find account by id: %w", err)
	}

	return toAccountData(account), nil
}

func toAccountData(account *domain.Account) AccountData {
	return AccountData{
		ID:       account.ID,
		Username: account.Username,
		IsActive: account.IsActive,
	}
}

package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	pkgsql "github.com/klwxsrx/hawk-session-service/pkg/sql"
)

type accountRepository struct {
	db pkgsql.Client
}

func NewAccountRepository(db pkgsql.Client) domain.AccountRepository {
	return accountRepository{db: db}
}

func (r accountRepository) FindOne(ctx context.Context, spec domain.FindAccountSpecification) (*domain.Account, error) {
	qb := pkgsql.Builder().
		Select("id", "username", "password_hash", "is_active").
		From("account").
		Limit(1)
	if spec.ID != nil {
		qb = qb.Where(sq.Eq{"id": *spec.ID})
	}
	if spec.Username != nil {
		qb = qb.Where(sq.Eq{"username": *spec.Username})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row SqlxAccount
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}

	return &domain.Account{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
	}, nil
}

type SqlxAccount struct {
	ID           domain.AccountID `db:"id"`
	Username     string           `db:"username"`
	PasswordHash string           `db:"password_hash"`
	IsActive     bool             `db:"is_active"`
}

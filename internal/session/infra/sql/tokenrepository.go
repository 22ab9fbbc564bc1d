package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	pkgsql "github.com/klwxsrx/hawk-session-service/pkg/sql"
)

const tokenTable = "session_token"

type tokenRepository struct {
	db pkgsql.Client
}

func NewTokenRepository(db pkgsql.Client) domain.TokenRepository {
	return tokenRepository{db: db}
}

func (r tokenRepository) Create(ctx context.Context, token *domain.Token) error {
	query, args, err := pkgsql.Builder().
		Insert(tokenTable).
		Columns("token_id", "owner_id", "key", "expires_at").
		Values(token.ID, token.OwnerID, token.Key, token.ExpiresAt).
		Suffix("on conflict do nothing").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert token: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if inserted == 0 {
		return domain.ErrTokenAlreadyExists
	}

	return nil
}

func (r tokenRepository) FindOne(ctx context.Context, id domain.TokenID) (*domain.Token, error) {
	query, args, err := pkgsql.Builder().
		Select("token_id", "owner_id", "key", "expires_at").
		From(tokenTable).
		Where(sq.Eq{"token_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row SqlxToken
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select token: %w", err)
	}

	return row.toDomain(), nil
}

func (r tokenRepository) Renew(ctx context.Context, id domain.TokenID, now, expiresAt time.Time) error {
	query, args, err := pkgsql.Builder().
		Update(tokenTable).
		Set("expires_at", sq.Expr("greatest(expires_at, ?)", expiresAt)).
		Where(sq.Eq{"token_id": id}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update token expiry: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if updated == 0 {
		return domain.ErrTokenNotFound
	}

	return nil
}

func (r tokenRepository) Delete(ctx context.Context, spec domain.DeleteTokenSpecification) (bool, error) {
	qb := pkgsql.Builder().
		Delete(tokenTable).
		Where(sq.Eq{"token_id": spec.ID})
	if spec.OwnerID != nil {
		qb = qb.Where(sq.Eq{"owner_id": *spec.OwnerID})
	}
	if spec.ExpiredAt != nil {
		qb = qb.Where(sq.LtOrEq{"expires_at": *spec.ExpiredAt})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete token: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get affected rows: %w", err)
	}

	return deleted > 0, nil
}

type SqlxToken struct {
	ID        domain.TokenID   `db:"token_id"`
	OwnerID   domain.AccountID `db:"owner_id"`
	Key       string           `db:"key"`
	ExpiresAt time.Time        `db:"expires_at"`
}

func (t SqlxToken) toDomain() *domain.Token {
	return &domain.Token{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Key:       t.Key,
		ExpiresAt: t.ExpiresAt,
	}
}

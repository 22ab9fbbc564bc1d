package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra/memory"
)

func newToken(expiresAt time.Time) *domain.Token {
	return &domain.Token{
		ID:        domain.TokenID{UUID: uuid.New()},
		OwnerID:   domain.AccountID{UUID: uuid.New()},
		Key:       uuid.NewString(),
		ExpiresAt: expiresAt,
	}
}

func TestTokenRepository_Create_RejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTokenRepository()
	token := newToken(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, token))

	sameID := newToken(time.Now())
	sameID.ID = token.ID
	assert.ErrorIs(t, repo.Create(ctx, sameID), domain.ErrTokenAlreadyExists)

	sameKey := newToken(time.Now())
	sameKey.Key = token.Key
	assert.ErrorIs(t, repo.Create(ctx, sameKey), domain.ErrTokenAlreadyExists)
}

func TestTokenRepository_Renew(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("extends_valid_token", func(t *testing.T) {
		repo := memory.NewTokenRepository()
		token := newToken(now.Add(time.Hour))
		require.NoError(t, repo.Create(ctx, token))

		require.NoError(t, repo.Renew(ctx, token.ID, now, now.Add(24*time.Hour)))

		stored, err := repo.FindOne(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, now.Add(24*time.Hour), stored.ExpiresAt)
	})
	t.Run("never_moves_expiry_backwards", func(t *testing.T) {
		repo := memory.NewTokenRepository()
		token := newToken(now.Add(48 * time.Hour))
		require.NoError(t, repo.Create(ctx, token))

		require.NoError(t, repo.Renew(ctx, token.ID, now, now.Add(24*time.Hour)))

		stored, err := repo.FindOne(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, now.Add(48*time.Hour), stored.ExpiresAt)
	})
	t.Run("expired_token_is_not_found", func(t *testing.T) {
		repo := memory.NewTokenRepository()
		token := newToken(now)
		require.NoError(t, repo.Create(ctx, token))

		assert.ErrorIs(t, repo.Renew(ctx, token.ID, now, now.Add(time.Hour)), domain.ErrTokenNotFound)
	})
}

func TestTokenRepository_Delete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("owner_mismatch_keeps_token", func(t *testing.T) {
		repo := memory.NewTokenRepository()
		token := newToken(now.Add(time.Hour))
		require.NoError(t, repo.Create(ctx, token))

		other := domain.AccountID{UUID: uuid.New()}
		deleted, err := repo.Delete(ctx, domain.DeleteTokenSpecification{ID: token.ID, OwnerID: &other})
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = repo.FindOne(ctx, token.ID)
		assert.NoError(t, err)
	})
	t.Run("expired_purge_keeps_renewed_token", func(t *testing.T) {
		repo := memory.NewTokenRepository()
		token := newToken(now.Add(time.Hour))
		require.NoError(t, repo.Create(ctx, token))

		deleted, err := repo.Delete(ctx, domain.DeleteTokenSpecification{ID: token.ID, ExpiredAt: &now})
		require.NoError(t, err)
		assert.False(t, deleted)
	})
	t.Run("owner_match_deletes_token_and_key", func(t *testing.T) {
		repo := memory.NewTokenRepository()
		token := newToken(now.Add(time.Hour))
		require.NoError(t, repo.Create(ctx, token))

		deleted, err := repo.Delete(ctx, domain.DeleteTokenSpecification{ID: token.ID, OwnerID: &token.OwnerID})
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.FindOne(ctx, token.ID)
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)

		reused := newToken(now.Add(time.Hour))
		reused.Key = token.Key
		assert.NoError(t, repo.Create(ctx, reused))
	})
	t.Run("unknown_token_is_not_an_error", func(t *testing.T) {
		deleted, err := memory.NewTokenRepository().Delete(ctx, domain.DeleteTokenSpecification{ID: domain.TokenID{UUID: uuid.New()}})
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestTokenRepository_ConcurrentAccess(t *testing.T) {
	const callers = 100

	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("renewals_keep_latest_expiry", func(t *testing.T) {
		repo := memory.NewTokenRepository()
		token := newToken(now.Add(time.Hour))
		require.NoError(t, repo.Create(ctx, token))

		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				at := now.Add(time.Duration(i) * time.Second)
				assert.NoError(t, repo.Renew(ctx, token.ID, at, at.Add(24*time.Hour)))
			}()
		}
		wg.Wait()

		stored, err := repo.FindOne(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, now.Add((callers-1)*time.Second).Add(24*time.Hour), stored.ExpiresAt)
	})
	t.Run("renew_after_delete_fails", func(t *testing.T) {
		repo := memory.NewTokenRepository()
		token := newToken(now.Add(time.Hour))
		require.NoError(t, repo.Create(ctx, token))

		var deletions sync.WaitGroup
		deletions.Add(1)
		var renewals sync.WaitGroup
		for i := range callers {
			renewals.Add(1)
			go func() {
				defer renewals.Done()
				if i == callers/2 {
					deleted, err := repo.Delete(ctx, domain.DeleteTokenSpecification{ID: token.ID})
					assert.NoError(t, err)
					assert.True(t, deleted)
					deletions.Done()
					return
				}
				err := repo.Renew(ctx, token.ID, now, now.Add(24*time.Hour))
				if err != nil {
					assert.ErrorIs(t, err, domain.ErrTokenNotFound)
				}
			}()
		}
		deletions.Wait()
		assert.ErrorIs(t, repo.Renew(ctx, token.ID, now, now.Add(24*time.Hour)), domain.ErrTokenNotFound)
		renewals.Wait()

		_, err := repo.FindOne(ctx, token.ID)
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})
}

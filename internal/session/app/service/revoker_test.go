package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	servicemock "github.com/klwxsrx/hawk-session-service/internal/session/app/service/mock"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	domainmock "github.com/klwxsrx/hawk-session-service/internal/session/domain/mock"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

func TestSessionRevoker_Revoke(t *testing.T) {
	f := newFixture(t)
	own := f.storeToken(t, f.alice.ID, testNow.Add(time.Hour))
	other := f.storeToken(t, f.bob.ID, testNow.Add(time.Hour))
	revoker := service.NewSessionRevoker(f.tokens, f.publisher, log.New(log.LevelDisabled))

	// another owner's token is left as is
	require.NoError(t, revoker.Revoke(context.Background(), other.ID, f.alice.ID))
	_, err := f.tokens.FindOne(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, f.publisher.events)

	require.NoError(t, revoker.Revoke(context.Background(), own.ID, f.alice.ID))
	_, err = f.tokens.FindOne(context.Background(), own.ID)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	require.Equal(t, []string{"session.revoked"}, f.publisher.Types())

	// repeated revocation is a no-op
	require.NoError(t, revoker.Revoke(context.Background(), own.ID, f.alice.ID))
	assert.Len(t, f.publisher.events, 1)

	_, err = newResolver(f, f.tokens).Resolve(ctxAt(testNow), own.ID.String())
	assert.ErrorIs(t, err, service.ErrUnknownToken)
}

func TestSessionRevoker_Revoke_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenID := domain.TokenID{}
	ownerID := domain.AccountID{}

	tokenRepo := domainmock.NewTokenRepository(ctrl)
	tokenRepo.EXPECT().Delete(gomock.Any(), domain.DeleteTokenSpecification{ID: tokenID, OwnerID: &ownerID}).
		Return(false, errors.New("connection reset"))
	publisher := servicemock.NewEventPublisher(ctrl)

	err := service.NewSessionRevoker(tokenRepo, publisher, log.New(log.LevelDisabled)).Revoke(context.Background(), tokenID, ownerID)
	assert.ErrorIs(t, err, service.ErrStorage)
}

func TestSessionRevoker_Revoke_SurvivesPublishFailure(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	token := f.storeToken(t, f.alice.ID, testNow.Add(time.Hour))

	publisher := servicemock.NewEventPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(domain.EventSessionRevoked{})).
		Return(errors.New("broker unavailable"))

	err := service.NewSessionRevoker(f.tokens, publisher, log.New(log.LevelDisabled)).Revoke(context.Background(), token.ID, f.alice.ID)
	assert.NoError(t, err)
}

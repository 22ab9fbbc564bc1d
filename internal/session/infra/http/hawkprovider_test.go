package http_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/hawk-session-service/internal/pkg/auth"
	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	servicemock "github.com/klwxsrx/hawk-session-service/internal/session/app/service/mock"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	sessionhttp "github.com/klwxsrx/hawk-session-service/internal/session/infra/http"
	pkgauth "github.com/klwxsrx/hawk-session-service/pkg/auth"
	"github.com/klwxsrx/hawk-session-service/pkg/hawk"
	"github.com/klwxsrx/hawk-session-service/pkg/metric"
	pkgtime "github.com/klwxsrx/hawk-session-service/pkg/time"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testCredential() service.Credential {
	return service.Credential{
		TokenID:     domain.TokenID{UUID: uuid.New()},
		Key:         "0123456789abcdefghijABCDEFGHIJkl",
		Algorithm:   hawk.AlgorithmSHA256,
		Principal:   "alice",
		PrincipalID: domain.AccountID{UUID: uuid.New()},
	}
}

func signedToken(t *testing.T, credential service.Credential, key string, ts time.Time) auth.HawkToken {
	t.Helper()

	req := hawk.Request{
		Method:   http.MethodGet,
		Resource: "/api/users/current",
		Host:     "session.local",
		Port:     80,
	}
	header, err := hawk.Sign(hawk.Credentials{
		ID:        credential.TokenID.String(),
		Key:       key,
		Algorithm: hawk.AlgorithmSHA256,
	}, req, hawk.Artifacts{Timestamp: ts.Unix(), Nonce: "k3j4h2"})
	require.NoError(t, err)

	req.Authorization = header
	return auth.HawkToken{Request: req}
}

func TestHawkProvider_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	credential := testCredential()

	resolver := servicemock.NewCredentialResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), credential.TokenID.String()).Return(credential, nil)

	metrics := metric.NewPrometheus("test")
	provider := sessionhttp.NewHawkProvider(resolver, pkgtime.NewClock(), time.Minute, metrics)

	ctx := pkgtime.WithNow(context.Background(), testNow)
	authentication, err := provider.Authenticate(ctx, signedToken(t, credential, credential.Key, testNow))
	require.NoError(t, err)
	require.True(t, authentication.IsAuthenticated())
	assert.Equal(t, auth.Principal{
		AccountID: credential.PrincipalID.UUID,
		TokenID:   credential.TokenID.UUID,
		Username:  "alice",
	}, *authentication.Principal())
}

func TestHawkProvider_Authenticate_RetriesStorageFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	credential := testCredential()
	storageErr := service.StorageError{Op: "renew token", Err: errors.New("connection reset")}

	resolver := servicemock.NewCredentialResolver(ctrl)
	gomock.InOrder(
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(service.Credential{}, storageErr),
		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(credential, nil),
	)

	provider := sessionhttp.NewHawkProvider(resolver, pkgtime.NewClock(), time.Minute, metric.NewStub())
	ctx := pkgtime.WithNow(context.Background(), testNow)

	_, err := provider.Authenticate(ctx, signedToken(t, credential, credential.Key, testNow))
	assert.NoError(t, err)
}

func TestHawkProvider_Authenticate_GivesUpAfterRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	credential := testCredential()
	storageErr := service.StorageError{Op: "find token", Err: errors.New("connection reset")}

	resolver := servicemock.NewCredentialResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(service.Credential{}, storageErr).Times(3)

	provider := sessionhttp.NewHawkProvider(resolver, pkgtime.NewClock(), time.Minute, metric.NewStub())
	ctx := pkgtime.WithNow(context.Background(), testNow)

	_, err := provider.Authenticate(ctx, signedToken(t, credential, credential.Key, testNow))
	assert.ErrorIs(t, err, service.ErrStorage)
	assert.NotErrorIs(t, err, pkgauth.ErrUnauthenticated)
}

func TestHawkProvider_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		resolveErr error
		key        string
		issuedAt   time.Time
		wantReason string
	}{
		{name: "resolver_rejection_is_not_retried", resolveErr: service.ErrExpiredToken, wantReason: service.ReasonExpired},
		{name: "inactive_owner", resolveErr: service.ErrNotActive, wantReason: service.ReasonNotActive},
		{name: "wrong_key", key: "wrong", wantReason: service.ReasonInvalidSignature},
		{name: "stale_timestamp", issuedAt: testNow.Add(-2 * time.Minute), wantReason: service.ReasonInvalidSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			credential := testCredential()

			resolver := servicemock.NewCredentialResolver(ctrl)
			if tt.resolveErr != nil {
				resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(service.Credential{}, tt.resolveErr).Times(1)
			} else {
				resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(credential, nil).Times(1)
			}

			key := credential.Key
			if tt.key != "" {
				key = tt.key
			}
			issuedAt := testNow
			if !tt.issuedAt.IsZero() {
				issuedAt = tt.issuedAt
			}

			provider := sessionhttp.NewHawkProvider(resolver, pkgtime.NewClock(), time.Minute, metric.NewStub())
			ctx := pkgtime.WithNow(context.Background(), testNow)

			_, err := provider.Authenticate(ctx, signedToken(t, credential, key, issuedAt))
			assert.ErrorIs(t, err, pkgauth.ErrUnauthenticated)
			reason, ok := pkgauth.Reason(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestHawkProvider_Authenticate_MalformedHeaderSkipsResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := servicemock.NewCredentialResolver(ctrl)

	provider := sessionhttp.NewHawkProvider(resolver, pkgtime.NewClock(), time.Minute, metric.NewStub())
	_, err := provider.Authenticate(context.Background(), auth.HawkToken{Request: hawk.Request{
		Method:        http.MethodGet,
		Resource:      "/api/users/current",
		Host:          "session.local",
		Port:          80,
		Authorization: `Hawk id="abc", ts="not-a-number", nonce="n", mac="m"`,
	}})

	reason, ok := pkgauth.Reason(err)
	require.True(t, ok)
	assert.Equal(t, service.ReasonInvalidSignature, reason)
}

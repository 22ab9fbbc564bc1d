package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/hawk-session-service/internal/pkg/auth"
	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	pkgauth "github.com/klwxsrx/hawk-session-service/pkg/auth"
	"github.com/klwxsrx/hawk-session-service/pkg/hawk"
	"github.com/klwxsrx/hawk-session-service/pkg/metric"
	pkgtime "github.com/klwxsrx/hawk-session-service/pkg/time"
)

const (
	maxResolveRetries       = 2
	resolveRetryInterval    = 50 * time.Millisecond
	resolveRetryMaxInterval = 500 * time.Millisecond

	authenticationsMetric = "hawk_authentications_total"
)

type hawkProvider struct {
	resolver      service.CredentialResolver
	authenticator *hawk.Authenticator
	metrics       metric.Metrics
}

func NewHawkProvider(
	resolver service.CredentialResolver,
	clock pkgtime.Clock,
	timestampSkew time.Duration,
	metrics metric.Metrics,
) pkgauth.Provider[auth.Principal] {
	if timestampSkew <= 0 {
		timestampSkew = hawk.DefaultTimestampSkew
	}

	p := &hawkProvider{
		resolver: resolver,
		metrics:  metrics,
	}
	p.authenticator = hawk.NewAuthenticator(
		p.credentials,
		hawk.WithTimestampSkew(timestampSkew),
		hawk.WithClock(clock.Now),
	)
	return p
}

func (p *hawkProvider) Authenticate(ctx context.Context, token pkgauth.Token) (pkgauth.Authentication[auth.Principal], error) {
	hawkToken, ok := token.(auth.HawkToken)
	if !ok {
		return nil, fmt.Errorf("unknown token with type %s", token.Type())
	}

	creds, _, err := p.authenticator.Authenticate(ctx, hawkToken.Request)
	if err != nil {
		err = authenticationError(err)
		p.countResult(err)
		return nil, err
	}

	credential, ok := creds.Data.(service.Credential)
	if !ok {
		return nil, errors.New("unexpected hawk credentials data")
	}

	p.countResult(nil)
	return pkgauth.Auth[auth.Principal]{AuthPrincipal: &auth.Principal{
		AccountID: credential.PrincipalID.UUID,
		TokenID:   credential.TokenID.UUID,
		Username:  credential.Principal,
	}}, nil
}

// credentials retries the resolver on storage failures only.
func (p *hawkProvider) credentials(ctx context.Context, id string) (*hawk.Credentials, error) {
	var credential service.Credential
	resolve := func() error {
		var err error
		credential, err = p.resolver.Resolve(ctx, id)
		if errors.Is(err, service.ErrStorage) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}

		return nil
	}

	err := backoff.Retry(resolve, backoff.WithContext(backoff.WithMaxRetries(newResolveBackoff(), maxResolveRetries), ctx))
	if err != nil {
		return nil, err
	}

	return &hawk.Credentials{
		ID:        credential.TokenID.String(),
		Key:       credential.Key,
		Algorithm: credential.Algorithm,
		User:      credential.Principal,
		Data:      credential,
	}, nil
}

func (p *hawkProvider) countResult(err error) {
	result := "success"
	if err != nil {
		result = "error"
		if reason, ok := pkgauth.Reason(err); ok {
			result = reason
		}
	}

	p.metrics.With(metric.Labels{"result": result}).Increment(authenticationsMetric)
}

func newResolveBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = resolveRetryInterval
	b.MaxInterval = resolveRetryMaxInterval
	return b
}

// authenticationError keeps resolver rejections and storage failures as is,
// every protocol level failure becomes an invalid signature.
func authenticationError(err error) error {
	switch {
	case errors.Is(err, pkgauth.ErrUnauthenticated), errors.Is(err, service.ErrStorage):
		return err
	case errors.Is(err, hawk.ErrMissingCredentials):
		return pkgauth.NewUnauthenticatedError(pkgauth.ReasonMissingCredentials, "Missing authentication")
	default:
		return fmt.Errorf("%w: %w", service.ErrInvalidSignature, err)
	}
}

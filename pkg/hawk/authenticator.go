package hawk

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"
)

const DefaultTimestampSkew = 60 * time.Second

var (
	ErrInvalidMAC     = errors.New("invalid hawk mac")
	ErrStaleTimestamp = errors.New("stale hawk timestamp")
)

type (
	// CredentialsFunc resolves credentials of a token id. Its errors are
	// returned by Authenticate unchanged in the error chain.
	CredentialsFunc func(ctx context.Context, id string) (*Credentials, error)

	AuthenticatorOption func(*Authenticator)
)

type Authenticator struct {
	credentials   CredentialsFunc
	timestampSkew time.Duration
	now           func(context.Context) time.Time
}

func NewAuthenticator(credentials CredentialsFunc, opts ...AuthenticatorOption) *Authenticator {
	a := &Authenticator{
		credentials:   credentials,
		timestampSkew: DefaultTimestampSkew,
		now: func(context.Context) time.Time {
			return time.Now()
		},
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

func WithTimestampSkew(skew time.Duration) AuthenticatorOption {
	return func(a *Authenticator) {
		a.timestampSkew = skew
	}
}

func WithClock(now func(context.Context) time.Time) AuthenticatorOption {
	return func(a *Authenticator) {
		a.now = now
	}
}

// Authenticate verifies the header MAC first and the timestamp second.
// Nonces are not tracked, so a captured header can be replayed within the skew.
func (a *Authenticator) Authenticate(ctx context.Context, req Request) (*Credentials, Artifacts, error) {
	art, err := ParseHeader(req.Authorization)
	if err != nil {
		return nil, Artifacts{}, err
	}

	creds, err := a.credentials(ctx, art.ID)
	if err != nil {
		return nil, art, fmt.Errorf("get credentials: %w", err)
	}
	if creds == nil || creds.Key == "" {
		return nil, art, fmt.Errorf("get credentials: %w", ErrMissingCredentials)
	}

	expected, err := calculateMAC(*creds, req, art)
	if err != nil {
		return nil, art, err
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(art.MAC)) != 1 {
		return nil, art, ErrInvalidMAC
	}

	now := a.now(ctx)
	issuedAt := time.Unix(art.Timestamp, 0)
	if issuedAt.Before(now.Add(-a.timestampSkew)) || issuedAt.After(now.Add(a.timestampSkew)) {
		return nil, art, ErrStaleTimestamp
	}

	return creds, art, nil
}

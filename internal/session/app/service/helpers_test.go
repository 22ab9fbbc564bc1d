package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	"github.com/klwxsrx/hawk-session-service/internal/session/app/session"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra/memory"
	pkgtime "github.com/klwxsrx/hawk-session-service/pkg/time"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

const testWindow = 24 * time.Hour

// plainEncoder stores passwords as is.
type plainEncoder struct{}

func (plainEncoder) HashPassword(password string) (string, error) { return "plain:" + password, nil }
func (plainEncoder) CompareHash(passwordHash, password string) bool {
	return passwordHash == "plain:"+password
}

// sequenceGenerator hands out the given tokens in order, then random ones.
type sequenceGenerator struct {
	tokens []session.GeneratedToken
	calls  int
}

func (g *sequenceGenerator) Generate() (session.GeneratedToken, error) {
	g.calls++
	if len(g.tokens) > 0 {
		token := g.tokens[0]
		g.tokens = g.tokens[1:]
		return token, nil
	}

	return session.GeneratedToken{
		ID:  domain.TokenID{UUID: uuid.New()},
		Key: uuid.NewString(),
	}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type())
	}
	return types
}

// stalledPublisher waits for its deadline like a broker that accepts connections but never acks.
type stalledPublisher struct {
	stall time.Duration
}

func (p stalledPublisher) Publish(ctx context.Context, _ ...domain.Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.stall):
		return nil
	}
}

type fixture struct {
	accounts  *memory.AccountRepository
	tokens    *memory.TokenRepository
	publisher *recordingPublisher
	lookup    service.AccountLookup
	clock     pkgtime.Clock
	alice     domain.Account
	bob       domain.Account
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	alice := domain.Account{
		ID:           domain.AccountID{UUID: uuid.New()},
		Username:     "alice",
		PasswordHash: "plain:s3cret",
		IsActive:     true,
	}
	bob := domain.Account{
		ID:           domain.AccountID{UUID: uuid.New()},
		Username:     "bob",
		PasswordHash: "plain:s3cret",
		IsActive:     false,
	}
	accounts := memory.NewAccountRepository(alice, bob)

	return &fixture{
		accounts:  accounts,
		tokens:    memory.NewTokenRepository(),
		publisher: &recordingPublisher{},
		lookup:    service.NewAccountLookup(accounts, plainEncoder{}),
		clock:     pkgtime.NewClock(),
		alice:     alice,
		bob:       bob,
	}
}

func (f *fixture) storeToken(t *testing.T, owner domain.AccountID, expiresAt time.Time) *domain.Token {
	t.Helper()

	token := &domain.Token{
		ID:        domain.TokenID{UUID: uuid.New()},
		OwnerID:   owner,
		Key:       uuid.NewString(),
		ExpiresAt: expiresAt,
	}
	if err := f.tokens.Create(context.Background(), token); err != nil {
		t.Fatal(err)
	}
	return token
}

func ctxAt(now time.Time) context.Context {
	return pkgtime.WithNow(context.Background(), now)
}

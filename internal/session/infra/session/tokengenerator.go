package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-secure-stdlib/base62"

	"github.com/klwxsrx/hawk-session-service/internal/session/app/session"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
)

const keyLength = 32

type tokenGenerator struct{}

func NewTokenGenerator() session.TokenGenerator {
	return tokenGenerator{}
}

func (g tokenGenerator) Generate() (session.GeneratedToken, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return session.GeneratedToken{}, fmt.Errorf("generate token id: %w", err)
	}

	key, err := base62.Random(keyLength)
	if err != nil {
		return session.GeneratedToken{}, fmt.Errorf("generate token key: %w", err)
	}

	return session.GeneratedToken{
		ID:  domain.TokenID{UUID: id},
		Key: key,
	}, nil
}

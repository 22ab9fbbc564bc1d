package session

import "github.com/klwxsrx/hawk-session-service/internal/session/domain"

type (
	TokenGenerator interface {
		Generate() (GeneratedToken, error)
	}

	GeneratedToken struct {
		ID  domain.TokenID
		Key string
	}
)

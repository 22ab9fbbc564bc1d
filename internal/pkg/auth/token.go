package auth

import (
	"github.com/klwxsrx/hawk-session-service/pkg/auth"
	"github.com/klwxsrx/hawk-session-service/pkg/hawk"
)

// HawkToken carries the signed parts of a request until the provider verifies them.
type HawkToken struct {
	Request hawk.Request
}

func (t HawkToken) Type() auth.PrincipalType {
	return PrincipalTypeAccount
}

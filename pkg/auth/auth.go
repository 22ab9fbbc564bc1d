package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

const ReasonMissingCredentials = "missing_credentials"

type (
	Provider[T Principal] interface {
		Authenticate(context.Context, Token) (Authentication[T], error)
	}

	Token interface {
		Type() PrincipalType
	}

	Authentication[T Principal] interface {
		IsAuthenticated() bool
		Principal() *T
	}

	Principal interface {
		Type() PrincipalType
		ID() *string
	}

	Auth[T Principal] struct {
		AuthPrincipal *T
	}

	PrincipalType string
)

func (a Auth[T]) IsAuthenticated() bool {
	return a.AuthPrincipal != nil
}

func (a Auth[T]) Principal() *T {
	return a.AuthPrincipal
}

// UnauthenticatedError is ErrUnauthenticated with a machine-readable reason.
type UnauthenticatedError struct {
	Reason  string
	Message string
}

func NewUnauthenticatedError(reason, message string) UnauthenticatedError {
	return UnauthenticatedError{
		Reason:  reason,
		Message: message,
	}
}

func (e UnauthenticatedError) Error() string {
	if e.Message == "" {
		return ErrUnauthenticated.Error()
	}

	return ErrUnauthenticated.Error() + ": " + e.Message
}

func (e UnauthenticatedError) Is(target error) bool {
	return target == ErrUnauthenticated //nolint:errorlint
}

// Reason extracts the reason of an UnauthenticatedError found in the err chain.
func Reason(err error) (string, bool) {
	var unauthenticated UnauthenticatedError
	if !errors.As(err, &unauthenticated) {
		return "", false
	}

	return unauthenticated.Reason, true
}

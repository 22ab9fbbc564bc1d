package auth

import (
	"context"
	"errors"
)

type contextKey int

const authenticationContextKey contextKey = iota

var errAuthenticationNotFound = errors.New("authentication not found")

// contextAuthentication is what the request context carries, principal is nil for anonymous requests.
type contextAuthentication struct {
	principal Principal
}

func WithAuthentication[T Principal](ctx context.Context, auth Authentication[T]) context.Context {
	var stored contextAuthentication
	if p := auth.Principal(); p != nil {
		stored.principal = *p
	}

	return context.WithValue(ctx, authenticationContextKey, stored)
}

// GetAuthentication fails when the context has no authentication or its principal is not a T.
func GetAuthentication[T Principal](ctx context.Context) (Authentication[T], bool) {
	stored, ok := ctx.Value(authenticationContextKey).(contextAuthentication)
	if !ok {
		return nil, false
	}
	if stored.principal == nil {
		return Auth[T]{}, true
	}

	principal, ok := stored.principal.(T)
	if !ok {
		return nil, false
	}

	return Auth[T]{&principal}, true
}

// GetPrincipal returns ErrUnauthenticated for anonymous requests.
func GetPrincipal[T Principal](ctx context.Context) (T, error) {
	var empty T
	authentication, ok := GetAuthentication[T](ctx)
	if !ok {
		return empty, errAuthenticationNotFound
	}
	if !authentication.IsAuthenticated() {
		return empty, ErrUnauthenticated
	}

	return *authentication.Principal(), nil
}

func IsAuthenticated(ctx context.Context) (bool, error) {
	stored, ok := ctx.Value(authenticationContextKey).(contextAuthentication)
	if !ok {
		return false, errAuthenticationNotFound
	}

	return stored.principal != nil, nil
}

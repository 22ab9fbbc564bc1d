package service

import (
	"errors"
	"fmt"

	"github.com/klwxsrx/hawk-session-service/pkg/auth"
)

const (
	ReasonUnknownCredentials = "unknown_credentials"
	ReasonNotActive          = "not_active"
	ReasonUnknownToken       = "unknown_token"
	ReasonExpired            = "expired"
	ReasonInvalidSignature   = "invalid_signature"
)

type UnauthorizedError = auth.UnauthenticatedError

var (
	ErrUnknownCredentials = auth.NewUnauthenticatedError(ReasonUnknownCredentials, "Unknown credentials")
	ErrNotActive          = auth.NewUnauthenticatedError(ReasonNotActive, "Not active")
	ErrUnknownToken       = auth.NewUnauthenticatedError(ReasonUnknownToken, "Unknown token")
	ErrExpiredToken       = auth.NewUnauthenticatedError(ReasonExpired, "Expired token")
	ErrInvalidSignature   = auth.NewUnauthenticatedError(ReasonInvalidSignature, "Invalid signature")
)

var ErrStorage = errors.New("storage failure")

// StorageError reports a failed store call, the operation may be retried.
type StorageError struct {
	Op  string
	Err error
}

func newStorageError(op string, err error) StorageError {
	return StorageError{Op: op, Err: err}
}

func (e StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrStorage, e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func (e StorageError) Is(target error) bool {
	return target == ErrStorage //nolint:errorlint
}

package observability

import (
	"context"

	"github.com/klwxsrx/hawk-session-service/pkg/auth"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

type (
	LogField string

	contextKey int
)

const (
	LogFieldRequestID LogField = "requestID"
	// LogFieldPrincipal logs principalType and principalID of an authenticated request.
	LogFieldPrincipal LogField = "principal"
)

const (
	requestIDContextKey contextKey = iota
	principalContextKey
)

type (
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
		Principal(context.Context) (auth.Principal, bool)
		WithPrincipal(context.Context, auth.Principal) context.Context
	}

	ObserverOption func(*observer)
)

type observer struct {
	logger        log.Logger
	loggingFields map[LogField]struct{}
}

func New(opts ...ObserverOption) Observer {
	o := observer{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o observer) RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	if !ok || len(requestID) == 0 {
		return "", false
	}

	return requestID, true
}

func (o observer) WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDContextKey, id)
	return o.withLogFields(ctx, LogFieldRequestID, log.Fields{
		string(LogFieldRequestID): id,
	})
}

func (o observer) Principal(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(auth.Principal)
	return principal, ok
}

func (o observer) WithPrincipal(ctx context.Context, principal auth.Principal) context.Context {
	if principal == nil {
		return ctx
	}

	ctx = context.WithValue(ctx, principalContextKey, principal)

	fields := log.Fields{"principalType": string(principal.Type())}
	if id := principal.ID(); id != nil {
		fields["principalID"] = *id
	}
	return o.withLogFields(ctx, LogFieldPrincipal, fields)
}

func (o observer) withLogFields(ctx context.Context, field LogField, fields log.Fields) context.Context {
	if _, ok := o.loggingFields[field]; !ok || o.logger == nil {
		return ctx
	}

	return o.logger.WithContext(ctx, fields)
}

func WithFieldsLogging(logger log.Logger, fields ...LogField) ObserverOption {
	return func(o *observer) {
		o.logger = logger

		o.loggingFields = make(map[LogField]struct{}, len(fields))
		for _, field := range fields {
			o.loggingFields[field] = struct{}{}
		}
	}
}

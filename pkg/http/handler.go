package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/klwxsrx/hawk-session-service/pkg/auth"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

// ErrorBody is written for every failed request.
type ErrorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Reason     string `json:"reason,omitempty"`
}

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	if err != nil {
		code := errorStatusCode(err, w.httpCode)
		writeError(ctx, w.impl, code, err)
		return
	}

	var encoded []byte
	if w.body != nil {
		encoded, err = json.Marshal(w.body)
		if err != nil {
			writeError(ctx, w.impl, http.StatusInternalServerError, fmt.Errorf("encode body: %w", err))
			return
		}
		w.impl.Header().Set("Content-Type", "application/json")
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = w.httpCode

	w.impl.WriteHeader(w.httpCode)
	if encoded != nil {
		_, _ = w.impl.Write(encoded)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, panic Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Panic = &panic

	writeError(ctx, w.impl, http.StatusInternalServerError, nil)
}

// errorStatusCode prefers an error status explicitly set by the handler.
func errorStatusCode(err error, setCode int) int {
	var tooLarge *http.MaxBytesError
	switch {
	case setCode >= http.StatusBadRequest:
		return setCode
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrParsingError):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, code int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = code
	meta.Error = err

	body := ErrorBody{
		Error:      http.StatusText(code),
		Message:    http.StatusText(code),
		StatusCode: code,
	}

	var unauthenticated auth.UnauthenticatedError
	switch {
	case code >= http.StatusInternalServerError:
	case errors.As(err, &unauthenticated):
		body.Reason = unauthenticated.Reason
		if unauthenticated.Message != "" {
			body.Message = unauthenticated.Message
		}
	case err != nil:
		body.Message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			body:     nil,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}

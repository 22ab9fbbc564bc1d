package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

const requestLogEntry = "request"

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			requestLogger := getRequestResponseFieldsLogger(r, meta.Code, logger)
			if meta.Auth != nil && meta.Auth.Principal() != nil {
				principal := *meta.Auth.Principal()
				requestLogger = requestLogger.With(log.Fields{
					"principalType": principal.Type(),
					"principalID":   principal.ID(),
				})
			}

			switch {
			case meta.Panic != nil:
				requestLogger.
					WithField("panic", log.Fields{
						"message":    meta.Panic.Message,
						"stacktrace": string(meta.Panic.Stacktrace),
					}).
					Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.
					WithError(meta.Error).
					Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				requestLogger.
					WithError(meta.Error).
					Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func getRequestFieldsLogger(r *http.Request, logger log.Logger) log.Logger {
	fields := log.Fields{
		"method": r.Method,
		"uri":    r.URL.RequestURI(),
	}
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		fields["route"] = route.GetName()
	}

	return logger.With(wrapFieldsWithRequestLogEntry(fields))
}

func getRequestResponseFieldsLogger(r *http.Request, code int, logger log.Logger) log.Logger {
	return getRequestFieldsLogger(r, logger).With(log.Fields{
		"responseCode": code,
	})
}

func wrapFieldsWithRequestLogEntry(fields log.Fields) log.Fields {
	return log.Fields{requestLogEntry: fields}
}

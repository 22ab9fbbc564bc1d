package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

const healthPath = "/healthz"

func WithHealthCheck(customHandlerFunc HandlerFunc) ServerOption {
	handler := func(w ResponseWriter, _ *http.Request) error {
		w.SetJSONBody(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
		return nil
	}
	if customHandlerFunc != nil {
		handler = customHandlerFunc
	}

	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, healthPath)).
			Methods(http.MethodGet).
			Path(healthPath).
			Handler(httpHandlerWrapper(handler))
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/hawk-session-service/pkg/auth"
)

const headerWWWAuthenticate = "WWW-Authenticate"

type AuthTokenProvider func(*http.Request) (auth.Token, bool)

// WithAuth authenticates requests carrying a token. Rejected tokens leave the
// request anonymous; WithAuthenticationRequirement turns that into a 401.
func WithAuth[T auth.Principal](provider auth.Provider[T], tokenProviders ...AuthTokenProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token auth.Token
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				r = setHandlerAuthentication(r, auth.Auth[T]{}, nil)
				handler.ServeHTTP(w, r)
				return
			}

			authData, err := provider.Authenticate(r.Context(), token)
			if errors.Is(err, auth.ErrUnauthenticated) {
				r = setHandlerAuthentication(r, auth.Auth[T]{}, err)
				handler.ServeHTTP(w, r)
				return
			}
			if err != nil {
				writeError(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			r = setHandlerAuthentication(r, authData, nil)
			handler.ServeHTTP(w, r)
		})
	})
}

func WithAuthenticationRequirement(challenge string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil {
				writeError(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			if !isAuthenticated {
				if challenge != "" {
					w.Header().Set(headerWWWAuthenticate, challenge)
				}
				writeError(r.Context(), w, http.StatusUnauthorized, authenticationError(r))
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func setHandlerAuthentication[T auth.Principal](r *http.Request, a auth.Authentication[T], authErr error) *http.Request {
	var principal *auth.Principal
	if a.Principal() != nil {
		p := auth.Principal(*a.Principal())
		principal = &p
	}

	meta := getHandlerMetadata(r.Context())
	meta.Auth = auth.Auth[auth.Principal]{AuthPrincipal: principal}
	meta.Error = authErr

	return r.WithContext(auth.WithAuthentication(r.Context(), a))
}

func authenticationError(r *http.Request) error {
	meta := getHandlerMetadata(r.Context())
	if meta.Error != nil {
		return meta.Error
	}

	return auth.NewUnauthenticatedError(auth.ReasonMissingCredentials, "Missing authentication")
}

package http

import (
	"fmt"
	"net/http"

	"github.com/klwxsrx/hawk-session-service/internal/pkg/auth"
	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	pkgauth "github.com/klwxsrx/hawk-session-service/pkg/auth"
	pkghttp "github.com/klwxsrx/hawk-session-service/pkg/http"
)

type LogoutHandler struct {
	revoker service.SessionRevoker
}

func NewLogoutHandler(revoker service.SessionRevoker) LogoutHandler {
	return LogoutHandler{revoker: revoker}
}

func (h LogoutHandler) Method() string {
	return http.MethodGet
}

func (h LogoutHandler) Path() string {
	return "/api/users/logout"
}

// Handle revokes the session the request was signed with.
func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := currentPrincipal(r)
	if err != nil {
		return err
	}

	err = h.revoker.Revoke(
		r.Context(),
		domain.TokenID{UUID: principal.TokenID},
		domain.AccountID{UUID: principal.AccountID},
	)
	if err != nil {
		return err
	}

	w.SetJSONBody(SuccessOut{Success: true})
	return nil
}

func currentPrincipal(r *http.Request) (auth.Principal, error) {
	principal, err := pkgauth.GetPrincipal[auth.Principal](r.Context())
	if err != nil {
		return auth.Principal{}, fmt.Errorf("get current principal: %w", err)
	}

	return principal, nil
}

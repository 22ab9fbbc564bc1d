package http

import (
	"net/http"

	"github.com/google/uuid"

	pkghttp "github.com/klwxsrx/hawk-session-service/pkg/http"
)

type GetCurrentAccountHandler struct{}

func NewGetCurrentAccountHandler() GetCurrentAccountHandler {
	return GetCurrentAccountHandler{}
}

func (h GetCurrentAccountHandler) Method() string {
	return http.MethodGet
}

func (h GetCurrentAccountHandler) Path() string {
	return "/api/users/current"
}

func (h GetCurrentAccountHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := currentPrincipal(r)
	if err != nil {
		return err
	}

	w.SetJSONBody(AccountOut{
		ID:       principal.AccountID,
		Username: principal.Username,
	})
	return nil
}

type AccountOut struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

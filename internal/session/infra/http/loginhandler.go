package http

import (
	"fmt"
	"net/http"

	commonhttp "github.com/klwxsrx/hawk-session-service/internal/pkg/http"
	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	pkghttp "github.com/klwxsrx/hawk-session-service/pkg/http"
)

type LoginHandler struct {
	issuer service.SessionIssuer
}

func NewLoginHandler(issuer service.SessionIssuer) LoginHandler {
	return LoginHandler{issuer: issuer}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/api/users/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[loginIn](), nil)
	if err != nil {
		return err
	}

	username := in.Username
	if username == "" {
		username = in.Email
	}

	token, err := h.issuer.Issue(r.Context(), username, in.Password)
	if err != nil {
		return err
	}

	w.SetHeader(commonhttp.HeaderToken, fmt.Sprintf("%s %s", token.TokenID, token.Key))
	w.SetJSONBody(SuccessOut{Success: true})
	return nil
}

type loginIn struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SuccessOut struct {
	Success bool `json:"success"`
}

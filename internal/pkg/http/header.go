package http

import (
	"net/http"
	"strings"

	"github.com/klwxsrx/hawk-session-service/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/hawk-session-service/pkg/auth"
	"github.com/klwxsrx/hawk-session-service/pkg/hawk"
	pkghttp "github.com/klwxsrx/hawk-session-service/pkg/http"
)

const (
	// HeaderToken carries `<tokenId> <key>` of a freshly issued session.
	HeaderToken     = "token"
	RequestIDHeader = pkghttp.DefaultRequestIDHeader

	HawkChallenge = "Hawk"
)

func HawkTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	header := strings.TrimSpace(r.Header.Get(hawk.HeaderAuthorization))
	if header == "" {
		return nil, false
	}

	return auth.HawkToken{Request: hawk.NewRequest(r)}, true
}

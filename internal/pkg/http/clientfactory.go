package http

import (
	"fmt"
	"net/http"
	"time"

	pkgenv "github.com/klwxsrx/hawk-session-service/pkg/env"
	"github.com/klwxsrx/hawk-session-service/pkg/hawk"
	pkghttp "github.com/klwxsrx/hawk-session-service/pkg/http"
	pkglog "github.com/klwxsrx/hawk-session-service/pkg/log"
	pkgmetric "github.com/klwxsrx/hawk-session-service/pkg/metric"
	pkgobservability "github.com/klwxsrx/hawk-session-service/pkg/observability"
	pkgstrings "github.com/klwxsrx/hawk-session-service/pkg/strings"
)

type Destination string

const DestinationSessionService Destination = "session"

type ClientFactory struct {
	observer pkgobservability.Observer
	metrics  pkgmetric.Metrics
	logger   pkglog.Logger
}

func NewClientFactory(
	observer pkgobservability.Observer,
	metrics pkgmetric.Metrics,
	logger pkglog.Logger,
) *ClientFactory {
	return &ClientFactory{
		observer: observer,
		metrics:  metrics,
		logger:   logger,
	}
}

// MustInitClient reads the base url from `<DESTINATION>_SERVICE_URL`.
func (f *ClientFactory) MustInitClient(dest Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
	host := pkgenv.Must(pkgenv.ParseString(hostEnv))

	opts := append([]pkghttp.ClientOption{
		pkghttp.WithClientDestination(string(dest), host),
		pkghttp.WithRequestObservability(f.observer, RequestIDHeader),
		pkghttp.WithRequestLogging(f.logger, pkglog.LevelInfo, pkglog.LevelWarn),
		pkghttp.WithRequestMetrics(f.metrics),
	}, extraOpts...)

	return pkghttp.NewClient(opts...)
}

// WithHawkCredentials signs every request with a session issued by the session service.
func WithHawkCredentials(tokenID, key string) pkghttp.ClientOption {
	creds := hawk.Credentials{
		ID:        tokenID,
		Key:       key,
		Algorithm: hawk.AlgorithmSHA256,
	}

	return pkghttp.WithRequestSigner(func(r *http.Request) error {
		return hawk.SignHTTPRequest(creds, r, time.Now())
	})
}

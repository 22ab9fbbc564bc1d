package session

import (
	"time"

	"github.com/klwxsrx/hawk-session-service/internal/pkg/auth"
	commonhttp "github.com/klwxsrx/hawk-session-service/internal/pkg/http"
	"github.com/klwxsrx/hawk-session-service/internal/session/api"
	"github.com/klwxsrx/hawk-session-service/internal/session/app/encoding"
	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	"github.com/klwxsrx/hawk-session-service/internal/session/app/session"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra/http"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra/message"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra/password"
	sessioninfrasession "github.com/klwxsrx/hawk-session-service/internal/session/infra/session"
	pkgauth "github.com/klwxsrx/hawk-session-service/pkg/auth"
	pkghttp "github.com/klwxsrx/hawk-session-service/pkg/http"
	"github.com/klwxsrx/hawk-session-service/pkg/lazy"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
	pkgmessage "github.com/klwxsrx/hawk-session-service/pkg/message"
	"github.com/klwxsrx/hawk-session-service/pkg/metric"
	"github.com/klwxsrx/hawk-session-service/pkg/observability"
	pkgtime "github.com/klwxsrx/hawk-session-service/pkg/time"
)

type Config struct {
	RenewalWindow     time.Duration
	TimestampSkew     time.Duration
	EventsTopicPrefix string
	Clock             pkgtime.Clock
}

type DependencyContainer struct {
	SessionService    lazy.Loader[api.SessionService]
	CredentialService lazy.Loader[api.CredentialService]

	hawkProvider             lazy.Loader[pkgauth.Provider[auth.Principal]]
	loginHandler             lazy.Loader[http.LoginHandler]
	logoutHandler            lazy.Loader[http.LogoutHandler]
	getCurrentAccountHandler lazy.Loader[http.GetCurrentAccountHandler]
}

func NewDependencyContainer(
	repositories lazy.Loader[infra.RepositoryContainer],
	messageSender lazy.Loader[pkgmessage.Sender],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
	config Config,
) DependencyContainer {
	if config.Clock == nil {
		config.Clock = pkgtime.NewClock()
	}

	eventPublisher := eventPublisherProvider(messageSender, config)
	passwordEncoder := passwordEncoderProvider()
	tokenGenerator := tokenGeneratorProvider()

	accountLookup := accountLookupProvider(repositories, passwordEncoder)
	issuer := sessionIssuerProvider(repositories, accountLookup, tokenGenerator, eventPublisher, logger, config)
	resolver := credentialResolverProvider(repositories, accountLookup, eventPublisher, logger, config)
	revoker := sessionRevokerProvider(repositories, eventPublisher, logger)

	return DependencyContainer{
		SessionService: lazy.New(func() (api.SessionService, error) {
			return sessionService{
				SessionIssuer:  issuer.MustLoad(),
				SessionRevoker: revoker.MustLoad(),
			}, nil
		}),
		CredentialService: lazy.New(func() (api.CredentialService, error) {
			return resolver.Load()
		}),
		hawkProvider: lazy.New(func() (pkgauth.Provider[auth.Principal], error) {
			return http.NewHawkProvider(resolver.MustLoad(), config.Clock, config.TimestampSkew, metrics.MustLoad()), nil
		}),
		loginHandler: lazy.New(func() (http.LoginHandler, error) {
			return http.NewLoginHandler(issuer.MustLoad()), nil
		}),
		logoutHandler: lazy.New(func() (http.LogoutHandler, error) {
			return http.NewLogoutHandler(revoker.MustLoad()), nil
		}),
		getCurrentAccountHandler: lazy.New(func() (http.GetCurrentAccountHandler, error) {
			return http.NewGetCurrentAccountHandler(), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, observer observability.Observer) {
	hawkAuth := pkghttp.WithAuth(c.hawkProvider.MustLoad(), commonhttp.HawkTokenProvider)
	hawkRequired := pkghttp.WithAuthenticationRequirement(commonhttp.HawkChallenge)
	principalObservability := pkghttp.WithPrincipalObservability(observer)

	registry.Register(c.loginHandler.MustLoad())
	registry.Register(c.logoutHandler.MustLoad(), hawkAuth, hawkRequired, principalObservability)
	registry.Register(c.getCurrentAccountHandler.MustLoad(), hawkAuth, hawkRequired, principalObservability)
}

type sessionService struct {
	service.SessionIssuer
	service.SessionRevoker
}

func eventPublisherProvider(messageSender lazy.Loader[pkgmessage.Sender], config Config) lazy.Loader[service.EventPublisher] {
	return lazy.New(func() (service.EventPublisher, error) {
		dispatcher := pkgmessage.NewEventDispatcher(
			message.SessionEventsTopic(config.EventsTopicPrefix),
			messageSender.MustLoad(),
		)
		return message.NewEventPublisher(dispatcher), nil
	})
}

func passwordEncoderProvider() lazy.Loader[encoding.PasswordEncoder] {
	return lazy.New(func() (encoding.PasswordEncoder, error) {
		return password.NewEncoder(), nil
	})
}

func tokenGeneratorProvider() lazy.Loader[session.TokenGenerator] {
	return lazy.New(func() (session.TokenGenerator, error) {
		return sessioninfrasession.NewTokenGenerator(), nil
	})
}

func accountLookupProvider(
	repositories lazy.Loader[infra.RepositoryContainer],
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
) lazy.Loader[service.AccountLookup] {
	return lazy.New(func() (service.AccountLookup, error) {
		return service.NewAccountLookup(
			repositories.MustLoad().AccountRepo.MustLoad(),
			passwordEncoder.MustLoad(),
		), nil
	})
}

func sessionIssuerProvider(
	repositories lazy.Loader[infra.RepositoryContainer],
	accountLookup lazy.Loader[service.AccountLookup],
	tokenGenerator lazy.Loader[session.TokenGenerator],
	eventPublisher lazy.Loader[service.EventPublisher],
	logger lazy.Loader[log.Logger],
	config Config,
) lazy.Loader[service.SessionIssuer] {
	return lazy.New(func() (service.SessionIssuer, error) {
		return service.NewSessionIssuer(
			accountLookup.MustLoad(),
			repositories.MustLoad().TokenRepo.MustLoad(),
			tokenGenerator.MustLoad(),
			eventPublisher.MustLoad(),
			config.Clock,
			config.RenewalWindow,
			logger.MustLoad(),
		), nil
	})
}

func credentialResolverProvider(
	repositories lazy.Loader[infra.RepositoryContainer],
	accountLookup lazy.Loader[service.AccountLookup],
	eventPublisher lazy.Loader[service.EventPublisher],
	logger lazy.Loader[log.Logger],
	config Config,
) lazy.Loader[service.CredentialResolver] {
	return lazy.New(func() (service.CredentialResolver, error) {
		return service.NewCredentialResolver(
			repositories.MustLoad().TokenRepo.MustLoad(),
			accountLookup.MustLoad(),
			eventPublisher.MustLoad(),
			config.Clock,
			config.RenewalWindow,
			logger.MustLoad(),
		), nil
	})
}

func sessionRevokerProvider(
	repositories lazy.Loader[infra.RepositoryContainer],
	eventPublisher lazy.Loader[service.EventPublisher],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.SessionRevoker] {
	return lazy.New(func() (service.SessionRevoker, error) {
		return service.NewSessionRevoker(
			repositories.MustLoad().TokenRepo.MustLoad(),
			eventPublisher.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}

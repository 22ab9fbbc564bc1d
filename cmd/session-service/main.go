package main

import (
	"context"

	"github.com/klwxsrx/hawk-session-service/internal/pkg/cmd"
	"github.com/klwxsrx/hawk-session-service/internal/session"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra"
	pkgcmd "github.com/klwxsrx/hawk-session-service/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infraContainer := cmd.NewInfrastructureContainer(ctx)
	defer infraContainer.Close(ctx)

	container := session.NewDependencyContainer(
		infra.NewSQLContainer(infraContainer.DB, infraContainer.DBMigrations),
		infraContainer.MessageSender,
		infraContainer.Metrics,
		infraContainer.Logger,
		session.Config{
			RenewalWindow:     infraContainer.Config.SessionRenewalWindow,
			TimestampSkew:     infraContainer.Config.HawkTimestampSkew,
			EventsTopicPrefix: infraContainer.Config.PulsarSessionTopic,
		},
	)

	httpServer := infraContainer.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer, infraContainer.Observer.MustLoad())

	pkgcmd.MustRun(ctx, infraContainer.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}

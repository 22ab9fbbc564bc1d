package cmd

import (
	"context"
	"fmt"
	"os"

	commonhttp "github.com/klwxsrx/hawk-session-service/internal/pkg/http"
	"github.com/klwxsrx/hawk-session-service/pkg/cmd"
	"github.com/klwxsrx/hawk-session-service/pkg/env"
	"github.com/klwxsrx/hawk-session-service/pkg/http"
	"github.com/klwxsrx/hawk-session-service/pkg/lazy"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
	"github.com/klwxsrx/hawk-session-service/pkg/message"
	"github.com/klwxsrx/hawk-session-service/pkg/metric"
	"github.com/klwxsrx/hawk-session-service/pkg/observability"
	"github.com/klwxsrx/hawk-session-service/pkg/pulsar"
	"github.com/klwxsrx/hawk-session-service/pkg/sql"
)

const metricsNamespace = "session_service"

type InfrastructureContainer struct {
	Config        Config
	HTTPServer    lazy.Loader[http.Server]
	MessageSender lazy.Loader[message.Sender]
	DBMigrations  lazy.Loader[SQLMigrations]
	DB            lazy.Loader[sql.Database]
	Metrics       lazy.Loader[metric.Metrics]
	Observer      lazy.Loader[observability.Observer]
	Logger        lazy.Loader[log.Logger]

	messageBrokerImpl lazy.Loader[*pulsar.MessageBroker]
	producerSender    lazy.Loader[*message.ProducerSender]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	config := env.Must(env.Parse[Config](""))

	prometheus := prometheusProvider()
	metrics := lazy.New(func() (metric.Metrics, error) { return prometheus.Load() })
	logger := loggerProvider(config)
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, config, logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)

	msgBrokerImpl := pulsarMessageBrokerProvider(config, logger)
	producerSender := producerSenderProvider(msgBrokerImpl)

	return &InfrastructureContainer{
		Config:            config,
		HTTPServer:        httpServerProvider(config, observer, prometheus, logger),
		MessageSender:     messageSenderProvider(config, producerSender),
		DBMigrations:      dbMigrations,
		DB:                db,
		Metrics:           metrics,
		Observer:          observer,
		Logger:            logger,
		messageBrokerImpl: msgBrokerImpl,
		producerSender:    producerSender,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	i.producerSender.IfLoaded(func(sender *message.ProducerSender) { sender.Close() })
	i.messageBrokerImpl.IfLoaded(func(broker *pulsar.MessageBroker) { broker.Close() })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func prometheusProvider() lazy.Loader[*metric.PrometheusMetrics] {
	return lazy.New(func() (*metric.PrometheusMetrics, error) {
		return metric.NewPrometheus(metricsNamespace), nil
	})
}

func loggerProvider(config Config) lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return log.New(log.ParseLevel(config.LogLevel)), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID, observability.LogFieldPrincipal),
		), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	config Config,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		db, err := sql.NewDatabase(ctx, sql.Config{
			DSN: sql.DSN{
				User:     config.SQLUser,
				Password: config.SQLPassword,
				Address:  config.SQLAddress,
				Database: config.SQLDatabase,
			},
			MaxOpenConnections: config.SQLMaxOpenConnections,
			ConnectionTimeout:  config.SQLConnectionTimeout,
		}, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	config Config,
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[*metric.PrometheusMetrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		return http.NewServer(
			config.HTTPAddress,
			http.WithHealthCheck(nil),
			http.WithMetricsHandler(metrics.MustLoad().Handler()),
			http.WithObservability(
				observer.MustLoad(),
				http.RequestIDHeaderExtractor(commonhttp.RequestIDHeader),
				http.RequestIDRandomUUIDExtractor(),
			),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func pulsarMessageBrokerProvider(config Config, logger lazy.Loader[log.Logger]) lazy.Loader[*pulsar.MessageBroker] {
	return lazy.New(func() (*pulsar.MessageBroker, error) {
		messageBroker, err := pulsar.NewMessageBroker(pulsar.Config{
			Address:           config.PulsarAddress,
			ConnectionTimeout: config.PulsarConnectionTimeout,
		}, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open pulsar connection: %w", err))
		}

		return messageBroker, nil
	})
}

func producerSenderProvider(broker lazy.Loader[*pulsar.MessageBroker]) lazy.Loader[*message.ProducerSender] {
	return lazy.New(func() (*message.ProducerSender, error) {
		return message.NewProducerSender(broker.MustLoad()), nil
	})
}

func messageSenderProvider(
	config Config,
	producerSender lazy.Loader[*message.ProducerSender],
) lazy.Loader[message.Sender] {
	return lazy.New(func() (message.Sender, error) {
		if config.PulsarAddress == "" {
			return message.NewStubSender(), nil
		}

		return producerSender.MustLoad(), nil
	})
}

package cmd

import "time"

type Config struct {
	HTTPAddress string `envconfig:"HTTP_ADDRESS" default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	SQLUser               string        `envconfig:"SQL_USER" required:"true"`
	SQLPassword           string        `envconfig:"SQL_PASSWORD" required:"true"`
	SQLAddress            string        `envconfig:"SQL_ADDRESS" required:"true"`
	SQLDatabase           string        `envconfig:"SQL_DATABASE" required:"true"`
	SQLMaxOpenConnections int           `envconfig:"SQL_MAX_OPEN_CONNECTIONS" default:"10"`
	SQLConnectionTimeout  time.Duration `envconfig:"SQL_CONNECTION_TIMEOUT"`

	SessionRenewalWindow time.Duration `envconfig:"SESSION_RENEWAL_WINDOW" default:"24h"`
	HawkTimestampSkew    time.Duration `envconfig:"HAWK_TIMESTAMP_SKEW" default:"60s"`

	// PulsarAddress is optional, session events are dropped without it.
	PulsarAddress           string        `envconfig:"PULSAR_ADDRESS"`
	PulsarConnectionTimeout time.Duration `envconfig:"PULSAR_CONNECTION_TIMEOUT"`
	PulsarSessionTopic      string        `envconfig:"PULSAR_SESSION_TOPIC" default:"persistent://public/default/audit"`
}

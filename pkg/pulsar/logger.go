package pulsar

import (
	"context"
	"fmt"

	pulsarlog "github.com/apache/pulsar-client-go/pulsar/log"

	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

const (
	logFieldComponent     = "component"
	logComponentName      = "pulsar"
	clientLogFieldsPrefix = "pulsar."
)

// clientLogger routes pulsar client logs into the service logger.
// Client fields are namespaced so "topic" or "producer_name" never shadow service fields,
// and the client's own info chatter about connections and producers is logged at debug.
type clientLogger struct {
	logger log.Logger
}

func newLoggerAdapter(logger log.Logger) pulsarlog.Logger {
	return clientLogger{logger.WithField(logFieldComponent, logComponentName)}
}

func (l clientLogger) SubLogger(fields pulsarlog.Fields) pulsarlog.Logger {
	return clientLogger{l.logger.With(clientFields(fields))}
}

func (l clientLogger) WithFields(fields pulsarlog.Fields) pulsarlog.Entry {
	return clientLogger{l.logger.With(clientFields(fields))}
}

func (l clientLogger) WithField(name string, value any) pulsarlog.Entry {
	return clientLogger{l.logger.WithField(clientLogFieldsPrefix+name, value)}
}

func (l clientLogger) WithError(err error) pulsarlog.Entry {
	return clientLogger{l.logger.WithError(err)}
}

func (l clientLogger) Debug(args ...any) { l.log(log.LevelDebug, fmt.Sprint(args...)) }
func (l clientLogger) Info(args ...any)  { l.log(log.LevelDebug, fmt.Sprint(args...)) }
func (l clientLogger) Warn(args ...any)  { l.log(log.LevelWarn, fmt.Sprint(args...)) }
func (l clientLogger) Error(args ...any) { l.log(log.LevelError, fmt.Sprint(args...)) }

func (l clientLogger) Debugf(format string, args ...any) {
	l.log(log.LevelDebug, fmt.Sprintf(format, args...))
}

func (l clientLogger) Infof(format string, args ...any) {
	l.log(log.LevelDebug, fmt.Sprintf(format, args...))
}

func (l clientLogger) Warnf(format string, args ...any) {
	l.log(log.LevelWarn, fmt.Sprintf(format, args...))
}

func (l clientLogger) Errorf(format string, args ...any) {
	l.log(log.LevelError, fmt.Sprintf(format, args...))
}

func (l clientLogger) log(level log.Level, msg string) {
	l.logger.Log(context.Background(), level, msg)
}

func clientFields(fields pulsarlog.Fields) log.Fields {
	result := make(log.Fields, len(fields))
	for name, value := range fields {
		result[clientLogFieldsPrefix+name] = value
	}
	return result
}

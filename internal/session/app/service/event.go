//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "EventPublisher=EventPublisher"
package service

import (
	"context"
	"time"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

const eventPublishTimeout = 200 * time.Millisecond

type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// publishEvents never fails the caller, session state is already committed.
// A stalled publisher holds the caller for eventPublishTimeout at most.
func publishEvents(ctx context.Context, publisher EventPublisher, logger log.Logger, events ...domain.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)

	result := make(chan error, 1)
	go func() {
		defer cancel()
		result <- publisher.Publish(ctx, events...)
	}()

	select {
	case err := <-result:
		if err != nil {
			logger.WithError(err).Warn(ctx, "failed to publish session events")
		}
	case <-ctx.Done():
		logger.WithError(ctx.Err()).Warn(ctx, "session events publishing timed out")
	}
}

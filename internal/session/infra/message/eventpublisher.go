package message

import (
	"context"

	"github.com/klwxsrx/hawk-session-service/internal/session/app/service"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	pkgmessage "github.com/klwxsrx/hawk-session-service/pkg/message"
)

// SessionEventsTopic names the topic session events are dispatched to.
func SessionEventsTopic(baseName string) pkgmessage.Topic {
	return pkgmessage.NewTopic(
		baseName,
		pkgmessage.WithTopicDomainName(domain.Name),
		pkgmessage.WithTopicAggregateName(domain.AggregateNameSessionToken),
	)
}

type eventPublisher struct {
	dispatcher pkgmessage.EventDispatcher
}

func NewEventPublisher(dispatcher pkgmessage.EventDispatcher) service.EventPublisher {
	return eventPublisher{dispatcher: dispatcher}
}

func (p eventPublisher) Publish(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]pkgmessage.Event, 0, len(events))
	for _, event := range events {
		messages = append(messages, event)
	}

	return p.dispatcher.Dispatch(ctx, messages...)
}

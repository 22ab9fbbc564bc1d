package message_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra/message"
	pkgmessage "github.com/klwxsrx/hawk-session-service/pkg/message"
)

type recordingSender struct {
	messages []*pkgmessage.Message
}

func (s *recordingSender) Send(_ context.Context, msg *pkgmessage.Message) error {
	s.messages = append(s.messages, msg)
	return nil
}

func TestSessionEventsTopic(t *testing.T) {
	assert.Equal(t,
		pkgmessage.Topic("persistent://public/default/audit.session-domain.session-token-aggregate"),
		message.SessionEventsTopic("persistent://public/default/audit"),
	)
}

func TestEventPublisher_Publish(t *testing.T) {
	sender := &recordingSender{}
	topic := message.SessionEventsTopic("audit")
	publisher := message.NewEventPublisher(pkgmessage.NewEventDispatcher(topic, sender))

	issued := domain.EventSessionIssued{
		EventID:   uuid.New(),
		TokenID:   domain.TokenID{UUID: uuid.New()},
		OwnerID:   domain.AccountID{UUID: uuid.New()},
		ExpiresAt: time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
	}
	revoked := domain.EventSessionRevoked{
		EventID: uuid.New(),
		TokenID: issued.TokenID,
		OwnerID: issued.OwnerID,
	}

	err := publisher.Publish(context.Background(), issued, revoked)
	require.NoError(t, err)
	require.Len(t, sender.messages, 2)

	for i, expected := range []domain.Event{issued, revoked} {
		msg := sender.messages[i]
		assert.Equal(t, topic, msg.Topic)
		assert.Equal(t, expected.ID(), msg.ID)
		assert.Equal(t, issued.OwnerID.String(), msg.Key)

		var envelope struct {
			Type string `json:"type"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &envelope))
		assert.Equal(t, expected.Type(), envelope.Type)
	}
}

func TestEventPublisher_Publish_NoEvents(t *testing.T) {
	sender := &recordingSender{}
	publisher := message.NewEventPublisher(pkgmessage.NewEventDispatcher("audit", sender))

	require.NoError(t, publisher.Publish(context.Background()))
	assert.Empty(t, sender.messages)
}

package pulsar

import (
	"context"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/hawk-session-service/pkg/log"
	"github.com/klwxsrx/hawk-session-service/pkg/message"
)

const (
	defaultConnectionTimeout = 20 * time.Second

	messageIDPropertyName = "messageID"
	healthCheckTopic      = "non-persistent://public/default/health-check"
)

type Config struct {
	Address           string
	ConnectionTimeout time.Duration
}

type MessageBroker struct {
	client pulsar.Client
}

func NewMessageBroker(config Config, logger log.Logger) (*MessageBroker, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	broker := &MessageBroker{client: client}

	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}
	if err = broker.awaitConnection(connTimeout); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return broker, nil
}

func (b *MessageBroker) Producer(topic message.Topic) (message.Producer, error) {
	producer, err := b.client.CreateProducer(pulsar.ProducerOptions{
		Topic: string(topic),
	})
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}

	return topicProducer{producer}, nil
}

func (b *MessageBroker) Close() {
	b.client.Close()
}

func (b *MessageBroker) awaitConnection(timeout time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = timeout / 4
	eb.MaxElapsedTime = timeout

	return backoff.Retry(func() error {
		p, err := b.client.CreateProducer(pulsar.ProducerOptions{
			Topic: healthCheckTopic,
		})
		if err == nil {
			p.Close()
		}
		return err
	}, eb)
}

type topicProducer struct {
	impl pulsar.Producer
}

func (p topicProducer) Send(ctx context.Context, msg *message.ProducerMessage) error {
	_, err := p.impl.Send(ctx, &pulsar.ProducerMessage{
		Payload:    msg.Payload,
		Key:        msg.Key,
		Properties: map[string]string{messageIDPropertyName: msg.ID.String()},
	})
	return err
}

func (p topicProducer) Close() {
	p.impl.Close()
}

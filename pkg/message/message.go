package message

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type Message struct {
	ID    uuid.UUID
	Topic Topic
	// Key is used for topic partitioning, messages with the same key fall in the same partition
	Key     string
	Payload []byte
}

type (
	Sender interface {
		Send(ctx context.Context, msg *Message) error
	}

	ProducerMessage struct {
		ID      uuid.UUID
		Key     string
		Payload []byte
	}

	Producer interface {
		Send(ctx context.Context, msg *ProducerMessage) error
		Close()
	}

	ProducerProvider interface {
		Producer(topic Topic) (Producer, error)
	}
)

// ProducerSender keeps one producer per topic, created on first send.
type ProducerSender struct {
	producerProvider ProducerProvider

	mu             sync.Mutex
	topicProducers map[Topic]Producer
}

func NewProducerSender(provider ProducerProvider) *ProducerSender {
	return &ProducerSender{
		producerProvider: provider,
		mu:               sync.Mutex{},
		topicProducers:   make(map[Topic]Producer),
	}
}

func (s *ProducerSender) Send(ctx context.Context, msg *Message) error {
	producer, err := s.producer(msg.Topic)
	if err != nil {
		return err
	}

	err = producer.Send(ctx, &ProducerMessage{
		ID:      msg.ID,
		Key:     msg.Key,
		Payload: msg.Payload,
	})
	if err != nil {
		return fmt.Errorf("send message to %s: %w", msg.Topic, err)
	}

	return nil
}

func (s *ProducerSender) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, producer := range s.topicProducers {
		producer.Close()
	}
	s.topicProducers = make(map[Topic]Producer)
}

// producer creates topic producers outside of mu, so a slow broker blocks only the senders of that topic.
func (s *ProducerSender) producer(topic Topic) (Producer, error) {
	s.mu.Lock()
	producer, ok := s.topicProducers[topic]
	s.mu.Unlock()
	if ok {
		return producer, nil
	}

	created, err := s.producerProvider.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("get producer for topic %s: %w", topic, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if producer, ok = s.topicProducers[topic]; ok {
		created.Close()
		return producer, nil
	}

	s.topicProducers[topic] = created
	return created, nil
}

type stubSender struct{}

// NewStubSender drops every message, used when no broker is configured.
func NewStubSender() Sender {
	return stubSender{}
}

func (s stubSender) Send(context.Context, *Message) error {
	return nil
}

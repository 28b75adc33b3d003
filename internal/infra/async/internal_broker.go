package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const _subscriptionBuffer = 32

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
	Error error
}

type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var (
	ErrTopicNotFound       = errors.New("topic not found")
	ErrSubscriptorNotFound = errors.New("subscriptor not found")
	ErrBrokerStopped       = errors.New("broker stopped")
)

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		topics: make(map[BrokerTopicName]map[string]chan BrokerMessage),
	}
}

// LocalBroker fans messages out to in-process subscribers. A subscriber that
// falls behind loses messages instead of blocking the publisher.
type LocalBroker struct {
	mu      sync.RWMutex
	topics  map[BrokerTopicName]map[string]chan BrokerMessage
	stopped bool
}

type Subscription struct {
	ID       string
	Receiver <-chan BrokerMessage
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return Subscription{}, ErrBrokerStopped
	}

	subscribers, ok := b.topics[topic]
	if !ok {
		subscribers = make(map[string]chan BrokerMessage)
		b.topics[topic] = subscribers
	}

	id := uuid.NewString()
	receiver := make(chan BrokerMessage, _subscriptionBuffer)
	subscribers[id] = receiver

	return Subscription{ID: id, Receiver: receiver}, nil
}

// Unsubscribe closes the receiver of the subscription.
func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, ok := b.topics[topic]
	if !ok {
		return ErrTopicNotFound
	}

	receiver, ok := subscribers[subscription.ID]
	if !ok {
		return ErrSubscriptorNotFound
	}

	delete(subscribers, subscription.ID)
	close(receiver)
	if len(subscribers) == 0 {
		delete(b.topics, topic)
	}

	return nil
}

// Publish returns ErrTopicNotFound when nobody listens on topic.
func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	b.mu.RLock()
	defer b.mu.RUnlock()

	subscribers, ok := b.topics[topic]
	if !ok {
		return ErrTopicNotFound
	}

	for id, receiver := range subscribers {
		select {
		case receiver <- msg:
		default:
			slog.Warn("dropping message for slow subscriber",
				slog.String("topic", string(topic)),
				slog.String("subscription_id", id),
				slog.String("event", msg.Event))
		}
	}

	return nil
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subscribers := range b.topics {
		for _, receiver := range subscribers {
			close(receiver)
		}
		delete(b.topics, topic)
	}
	b.stopped = true
}

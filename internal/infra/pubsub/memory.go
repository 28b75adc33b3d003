package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// In-memory implementation for local runs and tests. Every consumer group
// receives each message once.
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{
		broker: GetMemoryBroker(),
	}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: GetMemoryBroker(),
		group:  group,
	}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

// Consume registers handler and returns. The subscription ends when ctx is done.
func (c *MemoryConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, prototype Prototype) error {
	consumer := c.broker.Subscribe(topic, c.group, handler, prototype)
	go func() {
		<-ctx.Done()
		c.broker.unsubscribe(consumer)
	}()
	return nil
}

// MemoryBroker is a singleton that manages all in-memory pubsub operations
type MemoryBroker struct {
	mu     sync.RWMutex
	topics map[Topic]map[string][]*ConsumerInfo
	next   map[string]int
}

type ConsumerInfo struct {
	Group     string
	Handler   MessageHandler
	Prototype Prototype
	Topic     Topic
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = NewMemoryBroker()
	})
	return memoryBroker
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		topics: make(map[Topic]map[string][]*ConsumerInfo),
		next:   make(map[string]int),
	}
}

// Publish hands message to one consumer of every group subscribed to topic.
// Handlers run asynchronously.
func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	b.mu.Lock()
	targets := make([]*ConsumerInfo, 0, len(b.topics[topic]))
	for group, consumers := range b.topics[topic] {
		if len(consumers) == 0 {
			continue
		}
		cursor := fmt.Sprintf("%s/%s", topic, group)
		targets = append(targets, consumers[b.next[cursor]%len(consumers)])
		b.next[cursor]++
	}
	b.mu.Unlock()

	for _, consumer := range targets {
		go deliver(context.WithoutCancel(ctx), consumer, key, message)
	}

	return nil
}

func deliver(ctx context.Context, consumer *ConsumerInfo, key Key, message Message) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler",
				slog.String("topic", string(consumer.Topic)),
				slog.String("group", consumer.Group),
				slog.Any("panic", r))
		}
	}()

	if err := consumer.Handler(ctx, key, message); err != nil {
		slog.Error("error in message handler",
			slog.String("topic", string(consumer.Topic)),
			slog.String("group", consumer.Group),
			slog.String("error", err.Error()))
	}
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler, prototype Prototype) *ConsumerInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	consumer := &ConsumerInfo{
		Group:     group,
		Handler:   handler,
		Prototype: prototype,
		Topic:     topic,
	}

	groups, exists := b.topics[topic]
	if !exists {
		groups = make(map[string][]*ConsumerInfo)
		b.topics[topic] = groups
	}
	groups[group] = append(groups[group], consumer)

	return consumer
}

func (b *MemoryBroker) unsubscribe(consumer *ConsumerInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	groups := b.topics[consumer.Topic]
	consumers := groups[consumer.Group]
	for i, c := range consumers {
		if c == consumer {
			groups[consumer.Group] = append(consumers[:i], consumers[i+1:]...)
			break
		}
	}
	if len(groups[consumer.Group]) == 0 {
		delete(groups, consumer.Group)
	}
}

// Reset clears all topics and consumers (useful for testing)
func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.topics = make(map[Topic]map[string][]*ConsumerInfo)
	b.next = make(map[string]int)
}

// SubscriberCount returns the number of consumers registered on a topic.
func (b *MemoryBroker) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, consumers := range b.topics[topic] {
		count += len(consumers)
	}
	return count
}

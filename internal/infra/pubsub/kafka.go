package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lovoo/goka"
)

const (
	maxRetries int = 10
	retryDelay     = 5 * time.Second
)

// publisherKey represents a unique key for a publisher instance
type publisherKey struct {
	brokers string
	topic   string
	codec   string
}

// publisherInstance holds a publisher and its initialization state
type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

// publishersMap stores singleton instances of publishers
var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

func NewKafkaPublisher(brokers []string, topic string, codec Codec) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers: strings.Join(brokers, ","),
		topic:   topic,
		codec:   fmt.Sprintf("%T", codec),
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher",
			slog.String("topic", topic),
			slog.String("codec", key.codec))

		for try := 0; try < maxRetries; try++ {
			slog.Debug("connecting to kafka brokers", slog.String("brokers", key.brokers), slog.Int("try", try+1))
			emitter, err := goka.NewEmitter(brokers, goka.Stream(topic), codec)
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{emitter: emitter}
				return
			}
			slog.Warn("kafka emitter not ready", slog.String("error", err.Error()))
			time.Sleep(retryDelay)
		}

		instance.err = fmt.Errorf("impossible to connect to kafka brokers after %d retries", maxRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

var _ Publisher = (*SimpleKafkaPublisher)(nil)

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("key", string(key)))
	err := p.emitter.EmitSync(string(key), message)
	if err != nil {
		slog.Error("emitting message", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func NewKafkaConsumer(brokers []string, group string, codec Codec) *SimpleKafkaConsumer {
	return &SimpleKafkaConsumer{
		brokers: brokers,
		group:   goka.Group(group),
		codec:   codec,
	}
}

var _ Consumer = (*SimpleKafkaConsumer)(nil)

type SimpleKafkaConsumer struct {
	brokers []string
	group   goka.Group
	codec   Codec
}

// Consume runs a goka processor for topic until ctx is done.
func (c *SimpleKafkaConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	cb := func(gctx goka.Context, msg any) {
		key := Key(gctx.Key())
		if err := handler(gctx.Context(), key, msg); err != nil {
			slog.Error("handling message",
				slog.String("topic", string(topic)),
				slog.String("key", string(key)),
				slog.String("error", err.Error()))
		}
	}

	gg := goka.DefineGroup(
		c.group,
		goka.Input(goka.Stream(topic), c.codec, cb),
	)
	p, err := goka.NewProcessor(c.brokers, gg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	slog.Info("consuming topic", slog.String("topic", string(topic)), slog.String("group", string(c.group)))
	if err := p.Run(ctx); err != nil {
		return fmt.Errorf("running processor: %w", err)
	}

	return nil
}

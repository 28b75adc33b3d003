package communication

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"dms-server/internal/formbuilder/communication/internal"
	"dms-server/internal/infra/async"
	"dms-server/internal/infra/pubsub"
	"dms-server/internal/shared_kernel/avro"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

const _recordFeedTopicPrefix = "form_records:"

// RecordFeedTopic is the internal broker topic carrying the record events of
// one form.
func RecordFeedTopic(formID shareddomain.ID) async.BrokerTopicName {
	return async.BrokerTopicName(_recordFeedTopicPrefix + formID.String())
}

func NewRecordFeedRelay(consumers pubsub.ConsumerFactory, broker async.InternalBroker) *RecordFeedRelay {
	return &RecordFeedRelay{
		consumers: consumers,
		broker:    broker,
	}
}

var _ async.Worker = &RecordFeedRelay{}

// RecordFeedRelay consumes the form events topic and forwards record events
// to the internal broker, where live feed connections subscribe per form.
type RecordFeedRelay struct {
	consumers pubsub.ConsumerFactory
	broker    async.InternalBroker

	mu     sync.Mutex
	cancel context.CancelFunc
}

func (r *RecordFeedRelay) Run(ctx context.Context, done func()) {
	slog.Info("record feed relay started")
	defer done()

	runCtx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()
	defer cancel()

	err := r.consumers.New().Consume(runCtx, FormEventsTopic, r.Handle, avro.AvroFormEvent{})
	if err != nil {
		slog.Error("consuming form events", slog.String("error", err.Error()))
		return
	}

	<-runCtx.Done()
	slog.Info("record feed relay cancelled")
}

func (r *RecordFeedRelay) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

// Handle forwards one consumed message. Events without live subscribers are
// dropped.
func (r *RecordFeedRelay) Handle(ctx context.Context, _ pubsub.Key, message pubsub.Prototype) error {
	event, trace, err := internal.FromAvroMessage(message)
	if err != nil {
		return err
	}
	if !event.IsRecordEvent() {
		return nil
	}

	ctx, span := pubsub.CreateChildSpan(pubsub.InjectTraceIntoContext(ctx, trace), "record_feed.relay")
	defer span.End()

	err = r.broker.Publish(ctx, RecordFeedTopic(event.FormID), async.BrokerMessage{
		Event: string(event.Type),
		Value: event,
	})
	if errors.Is(err, async.ErrTopicNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("forwarding record event: %w", err)
	}

	return nil
}

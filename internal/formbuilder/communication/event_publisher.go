package communication

import (
	"context"
	"fmt"

	"dms-server/internal/formbuilder/communication/internal"
	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/pubsub"
	"dms-server/internal/shared_kernel/avro"
)

const (
	FormEventsTopic pubsub.Topic = "dynamic_forms"
)

func NewEventPublisher(factory pubsub.PublisherFactory) (*EventPublisher, error) {
	publisher, err := factory.New(FormEventsTopic, avro.AvroFormEvent{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}
	return &EventPublisher{
		publisher: publisher,
	}, nil
}

var _ usecases.EventPublisher = (*EventPublisher)(nil)

// EventPublisher sends form lifecycle events keyed by form id, so the events
// of one form keep their order within a partition.
type EventPublisher struct {
	publisher pubsub.Publisher
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.FormEvent) error {
	message := internal.ToAvroFormEvent(event, pubsub.ExtractTraceFromContext(ctx))
	err := p.publisher.Publish(ctx, pubsub.Key(event.FormID), message)
	if err != nil {
		return fmt.Errorf("publishing form event: %w", err)
	}

	return nil
}

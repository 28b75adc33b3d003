package internal

import (
	"fmt"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/infra/pubsub"
	"dms-server/internal/shared_kernel/avro"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

func ToAvroFormEvent(event domain.FormEvent, trace pubsub.TraceHeaders) *avro.AvroFormEvent {
	columns := event.Columns
	if columns == nil {
		columns = []string{}
	}

	message := &avro.AvroFormEvent{
		Type:       string(event.Type),
		FormID:     event.FormID.String(),
		FormName:   event.FormName.String(),
		Columns:    columns,
		OccurredAt: event.OccurredAt.UTC(),
		TraceID:    trace.TraceID,
		SpanID:     trace.SpanID,
		TraceFlags: trace.TraceFlags,
	}
	if event.IsRecordEvent() {
		id := int64(event.RecordID)
		message.RecordID = &id
	}

	return message
}

func FromAvroMessage(message any) (domain.FormEvent, pubsub.TraceHeaders, error) {
	var m *avro.AvroFormEvent
	switch v := message.(type) {
	case *avro.AvroFormEvent:
		m = v
	case avro.AvroFormEvent:
		m = &v
	}
	if m == nil {
		return domain.FormEvent{}, pubsub.TraceHeaders{}, fmt.Errorf("unexpected message type %T", message)
	}

	event := domain.FormEvent{
		Type:       domain.EventType(m.Type),
		FormID:     shareddomain.ID(m.FormID),
		FormName:   domain.Identifier(m.FormName),
		Columns:    m.Columns,
		OccurredAt: m.OccurredAt,
	}
	if m.RecordID != nil {
		event.RecordID = domain.RecordID(*m.RecordID)
	}

	trace := pubsub.TraceHeaders{TraceID: m.TraceID, SpanID: m.SpanID, TraceFlags: m.TraceFlags}
	return event, trace, nil
}

package avro

import "time"

// FormEventSchema describes the lifecycle events published on the
// dynamic_forms topic.
const FormEventSchema = `{
	"type": "record",
	"name": "FormEvent",
	"namespace": "dms_server",
	"fields": [
		{"name": "type", "type": "string"},
		{"name": "form_id", "type": "string"},
		{"name": "form_name", "type": "string"},
		{"name": "record_id", "type": ["null", "long"], "default": null},
		{"name": "columns", "type": {"type": "array", "items": "string"}},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "trace_id", "type": "string", "default": ""},
		{"name": "span_id", "type": "string", "default": ""},
		{"name": "trace_flags", "type": "string", "default": ""}
	]
}`

// FormEventSubject is the schema registry subject of FormEventSchema.
const FormEventSubject = "dynamic_forms-value"

// AvroFormEvent is the Avro-compatible form lifecycle event.
type AvroFormEvent struct {
	Type       string    `avro:"type"`
	FormID     string    `avro:"form_id"`
	FormName   string    `avro:"form_name"`
	RecordID   *int64    `avro:"record_id"`
	Columns    []string  `avro:"columns"`
	OccurredAt time.Time `avro:"occurred_at"`
	TraceID    string    `avro:"trace_id"`
	SpanID     string    `avro:"span_id"`
	TraceFlags string    `avro:"trace_flags"`
}

func toAvroFormEvent(value any) (*AvroFormEvent, error) {
	switch v := value.(type) {
	case AvroFormEvent:
		return &v, nil
	case *AvroFormEvent:
		if v == nil {
			return nil, errNilMessage
		}
		return v, nil
	default:
		return nil, unsupportedMessage(value)
	}
}

// toNative converts an event into the generic form goavro encodes.
func (e *AvroFormEvent) toNative() map[string]any {
	columns := make([]any, len(e.Columns))
	for i, c := range e.Columns {
		columns[i] = c
	}

	var recordID any
	if e.RecordID != nil {
		recordID = map[string]any{"long": *e.RecordID}
	}

	return map[string]any{
		"type":        e.Type,
		"form_id":     e.FormID,
		"form_name":   e.FormName,
		"record_id":   recordID,
		"columns":     columns,
		"occurred_at": e.OccurredAt.UTC(),
		"trace_id":    e.TraceID,
		"span_id":     e.SpanID,
		"trace_flags": e.TraceFlags,
	}
}

func fromNative(native any) (*AvroFormEvent, error) {
	m, ok := native.(map[string]any)
	if !ok {
		return nil, unsupportedMessage(native)
	}

	event := &AvroFormEvent{
		Type:       getString(m, "type"),
		FormID:     getString(m, "form_id"),
		FormName:   getString(m, "form_name"),
		TraceID:    getString(m, "trace_id"),
		SpanID:     getString(m, "span_id"),
		TraceFlags: getString(m, "trace_flags"),
	}

	if union, ok := m["record_id"].(map[string]any); ok {
		if id, ok := union["long"].(int64); ok {
			event.RecordID = &id
		}
	}

	if columns, ok := m["columns"].([]any); ok {
		event.Columns = make([]string, 0, len(columns))
		for _, c := range columns {
			if s, ok := c.(string); ok {
				event.Columns = append(event.Columns, s)
			}
		}
	}

	switch t := m["occurred_at"].(type) {
	case time.Time:
		event.OccurredAt = t.UTC()
	case int64:
		event.OccurredAt = time.UnixMilli(t).UTC()
	}

	return event, nil
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

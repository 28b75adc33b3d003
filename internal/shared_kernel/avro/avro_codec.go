package avro

import (
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
)

var errNilMessage = errors.New("nil message")

func unsupportedMessage(value any) error {
	return fmt.Errorf("unsupported message type for Avro conversion: %T", value)
}

// AvroCodec encodes form events with the static schema and no registry. It
// is used when no schema registry is configured.
type AvroCodec struct {
	schema avro.Schema
}

func NewAvroCodec() (*AvroCodec, error) {
	schema, err := avro.Parse(FormEventSchema)
	if err != nil {
		return nil, fmt.Errorf("parsing form event schema: %w", err)
	}

	return &AvroCodec{schema: schema}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	event, err := toAvroFormEvent(value)
	if err != nil {
		return nil, err
	}
	if event.Columns == nil {
		event.Columns = []string{}
	}

	data, err := avro.Marshal(c.schema, event)
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

func (c *AvroCodec) Decode(data []byte) (any, error) {
	var event AvroFormEvent
	if err := avro.Unmarshal(c.schema, data, &event); err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	return &event, nil
}

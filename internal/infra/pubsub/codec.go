package pubsub

import (
	"fmt"

	"dms-server/internal/shared_kernel/avro"

	"github.com/riferrei/srclient"
)

// Codec matches goka.Codec.
type Codec interface {
	Encode(value any) (data []byte, err error)
	Decode(data []byte) (value any, err error)
}

// NewCodec returns the Confluent codec when a schema registry is configured
// and the static Avro codec otherwise.
func NewCodec(schemaRegistryURL string) (Codec, error) {
	if schemaRegistryURL == "" {
		codec, err := avro.NewAvroCodec()
		if err != nil {
			return nil, fmt.Errorf("creating avro codec: %w", err)
		}
		return codec, nil
	}

	codec, err := avro.NewConfluentAvroCodec(srclient.CreateSchemaRegistryClient(schemaRegistryURL))
	if err != nil {
		return nil, fmt.Errorf("creating confluent codec: %w", err)
	}
	return codec, nil
}

package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"dms-server/internal/infra/cache"

	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
	_defaultCodecCacheTTL  = 5 * time.Minute

	_magicByte    = 0
	_headerLength = 5
)

// SchemaRegistry is the part of the srclient API the codec needs.
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

// ConfluentAvroCodec writes the Confluent wire format: a zero magic byte, the
// big endian schema id and the Avro binary body.
type ConfluentAvroCodec struct {
	schemaRegistry SchemaRegistry
	subject        string
	schemaCache    cache.Cache
	codecCache     cache.Cache
}

func NewConfluentAvroCodec(schemaRegistry SchemaRegistry) (*ConfluentAvroCodec, error) {
	schemaCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	codecCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating codec cache: %w", err)
	}

	return &ConfluentAvroCodec{
		schemaRegistry: schemaRegistry,
		subject:        FormEventSubject,
		schemaCache:    schemaCache,
		codecCache:     codecCache,
	}, nil
}

// getOrRegisterSchemaID returns the id of the latest registered schema,
// registering FormEventSchema when the subject does not exist yet.
func (c *ConfluentAvroCodec) getOrRegisterSchemaID() (int, error) {
	ctx := context.Background()
	if cached, found := c.schemaCache.Get(ctx, c.subject); found {
		if id, ok := cached.(int); ok {
			return id, nil
		}
	}

	registered, err := c.schemaRegistry.GetLatestSchema(c.subject)
	if err == nil && registered != nil {
		c.schemaCache.Set(ctx, c.subject, registered.ID(), _defaultSchemaCacheTTL)
		return registered.ID(), nil
	}

	created, err := c.schemaRegistry.CreateSchema(c.subject, FormEventSchema, srclient.Avro)
	if err != nil {
		return 0, fmt.Errorf("registering schema: %w", err)
	}

	c.schemaCache.Set(ctx, c.subject, created.ID(), _defaultSchemaCacheTTL)
	return created.ID(), nil
}

func (c *ConfluentAvroCodec) getCodecByID(schemaID int) (*goavro.Codec, error) {
	ctx := context.Background()
	key := fmt.Sprintf("schema_%d", schemaID)

	if cached, found := c.codecCache.Get(ctx, key); found {
		if codec, ok := cached.(*goavro.Codec); ok {
			return codec, nil
		}
	}

	schema, err := c.schemaRegistry.GetSchema(schemaID)
	if err != nil {
		return nil, fmt.Errorf("fetching schema from registry: %w", err)
	}

	codec, err := goavro.NewCodec(schema.Schema())
	if err != nil {
		return nil, fmt.Errorf("creating codec from schema: %w", err)
	}

	c.codecCache.Set(ctx, key, codec, _defaultCodecCacheTTL)
	return codec, nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	event, err := toAvroFormEvent(value)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro struct: %w", err)
	}

	schemaID, err := c.getOrRegisterSchemaID()
	if err != nil {
		return nil, fmt.Errorf("getting schema ID: %w", err)
	}

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	body, err := codec.BinaryFromNative(nil, event.toNative())
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	result := make([]byte, _headerLength+len(body))
	result[0] = _magicByte
	binary.BigEndian.PutUint32(result[1:_headerLength], uint32(schemaID))
	copy(result[_headerLength:], body)

	return result, nil
}

func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _headerLength {
		return nil, fmt.Errorf("invalid Avro data: too short")
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}
	schemaID := int(binary.BigEndian.Uint32(data[1:_headerLength]))

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	native, _, err := codec.NativeFromBinary(data[_headerLength:])
	if err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	event, err := fromNative(native)
	if err != nil {
		return nil, fmt.Errorf("converting from Avro struct: %w", err)
	}

	return event, nil
}

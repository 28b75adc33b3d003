package pubsub

import "fmt"

const EnvironmentLocal = "local"

// Factory creates the appropriate pubsub implementation based on environment
type Factory struct {
	publisherFactory PublisherFactory
	consumerFactory  ConsumerFactory
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	ConsumerGroup     string
	SchemaRegistryURL string
}

// NewFactory uses the in-memory broker for the local environment and Kafka
// for every other one.
func NewFactory(opts FactoryOptions) (*Factory, error) {
	if opts.Environment == EnvironmentLocal {
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(),
			consumerFactory:  NewMemoryConsumerFactory(opts.ConsumerGroup),
		}, nil
	}

	codec, err := NewCodec(opts.SchemaRegistryURL)
	if err != nil {
		return nil, fmt.Errorf("creating codec: %w", err)
	}

	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(KafkaPublisherFactoryOptions{
			Brokers: opts.KafkaBrokers,
			Codec:   codec,
		}),
		consumerFactory: NewKafkaConsumerFactory(opts.KafkaBrokers, opts.ConsumerGroup, codec),
	}, nil
}

// GetPublisherFactory returns the configured publisher factory
func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

// GetConsumerFactory returns the configured consumer factory
func (f *Factory) GetConsumerFactory() ConsumerFactory {
	return f.consumerFactory
}

// NewPublisher creates a new publisher for the given topic and prototype
func (f *Factory) NewPublisher(topic Topic, prototype Message) (Publisher, error) {
	return f.publisherFactory.New(topic, prototype)
}

// NewConsumer creates a new consumer
func (f *Factory) NewConsumer() Consumer {
	return f.consumerFactory.New()
}

package communication_test

import (
	"context"
	"errors"
	"time"

	"dms-server/internal/formbuilder/communication"
	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/infra/pubsub"
	"dms-server/internal/shared_kernel/avro"
	shareddomain "dms-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type mockPublisherFactory struct {
	publisher *mockPublisher
	topic     pubsub.Topic
}

func (f *mockPublisherFactory) New(topic pubsub.Topic, _ pubsub.Message) (pubsub.Publisher, error) {
	f.topic = topic
	return f.publisher, nil
}

type mockPublisher struct {
	publishedKey   pubsub.Key
	publishedValue pubsub.Message
	err            error
}

func (p *mockPublisher) Publish(_ context.Context, key pubsub.Key, message pubsub.Message) error {
	p.publishedKey = key
	p.publishedValue = message
	return p.err
}

var _ = ginkgo.Describe("EventPublisher", func() {
	var (
		factory   *mockPublisherFactory
		publisher *communication.EventPublisher
		form      domain.LogicalForm
	)

	ginkgo.BeforeEach(func() {
		factory = &mockPublisherFactory{publisher: &mockPublisher{}}

		var err error
		publisher, err = communication.NewEventPublisher(factory)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		form = domain.LogicalForm{ID: shareddomain.ID("form-1"), Name: "employees"}
	})

	ginkgo.It("should publish on the form events topic", func() {
		gomega.Expect(factory.topic).To(gomega.Equal(communication.FormEventsTopic))
	})

	ginkgo.It("should publish record events keyed by form id", func() {
		event := domain.NewRecordEvent(domain.EventRecordCreated, form, 12)

		gomega.Expect(publisher.Publish(context.Background(), event)).To(gomega.Succeed())

		gomega.Expect(factory.publisher.publishedKey).To(gomega.Equal(pubsub.Key("form-1")))
		message, ok := factory.publisher.publishedValue.(*avro.AvroFormEvent)
		gomega.Expect(ok).To(gomega.BeTrue(), "Expected published value to be *avro.AvroFormEvent")
		gomega.Expect(message.Type).To(gomega.Equal("record_created"))
		gomega.Expect(message.FormName).To(gomega.Equal("employees"))
		gomega.Expect(*message.RecordID).To(gomega.Equal(int64(12)))
		gomega.Expect(message.OccurredAt).To(gomega.BeTemporally("~", time.Now(), time.Second))
	})

	ginkgo.It("should leave the record id out of form events", func() {
		event := domain.NewFormEvent(domain.EventFieldsAdded, form)
		event.Columns = []string{"age"}

		gomega.Expect(publisher.Publish(context.Background(), event)).To(gomega.Succeed())

		message := factory.publisher.publishedValue.(*avro.AvroFormEvent)
		gomega.Expect(message.RecordID).To(gomega.BeNil())
		gomega.Expect(message.Columns).To(gomega.Equal([]string{"age"}))
	})

	ginkgo.It("should wrap transport errors", func() {
		factory.publisher.err = errors.New("broker down")

		err := publisher.Publish(context.Background(), domain.NewFormEvent(domain.EventFormCreated, form))
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("broker down")))
	})
})

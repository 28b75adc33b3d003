package communication_test

import (
	"context"

	"dms-server/internal/formbuilder/communication"
	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/infra/async"
	"dms-server/internal/infra/pubsub"
	"dms-server/internal/shared_kernel/avro"
	shareddomain "dms-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RecordFeedRelay", func() {
	var (
		broker    *async.LocalBroker
		relay     *communication.RecordFeedRelay
		publisher *communication.EventPublisher
		form      domain.LogicalForm
		ctx       context.Context
		cancel    context.CancelFunc
		finished  chan struct{}
	)

	ginkgo.BeforeEach(func() {
		pubsub.GetMemoryBroker().Reset()
		broker = async.NewLocalBroker()
		form = domain.LogicalForm{ID: shareddomain.ID("form-1"), Name: "employees"}

		var err error
		publisher, err = communication.NewEventPublisher(pubsub.NewMemoryPublisherFactory())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		relay = communication.NewRecordFeedRelay(pubsub.NewMemoryConsumerFactory("record-feed"), broker)
		ctx, cancel = context.WithCancel(context.Background())
		finished = make(chan struct{})
		go relay.Run(ctx, func() { close(finished) })

		gomega.Eventually(func() int {
			return pubsub.GetMemoryBroker().SubscriberCount(communication.FormEventsTopic)
		}).Should(gomega.Equal(1))
	})

	ginkgo.AfterEach(func() {
		cancel()
		gomega.Eventually(finished).Should(gomega.BeClosed())
		broker.Stop()
	})

	ginkgo.It("should forward record events to the subscribers of the form", func() {
		subscription, err := broker.Subscribe(communication.RecordFeedTopic(form.ID))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		err = publisher.Publish(ctx, domain.NewRecordEvent(domain.EventRecordUpdated, form, 3))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		var message async.BrokerMessage
		gomega.Eventually(subscription.Receiver).Should(gomega.Receive(&message))
		gomega.Expect(message.Event).To(gomega.Equal("record_updated"))

		event, ok := message.Value.(domain.FormEvent)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(event.RecordID).To(gomega.Equal(domain.RecordID(3)))
		gomega.Expect(event.FormID).To(gomega.Equal(form.ID))
	})

	ginkgo.It("should ignore form events", func() {
		subscription, err := broker.Subscribe(communication.RecordFeedTopic(form.ID))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		err = publisher.Publish(ctx, domain.NewFormEvent(domain.EventFieldsAdded, form))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Consistently(subscription.Receiver).ShouldNot(gomega.Receive())
	})

	ginkgo.It("should not fail when nobody follows the form", func() {
		recordID := int64(1)
		message := &avro.AvroFormEvent{Type: "record_deleted", FormID: "form-2", FormName: "other", RecordID: &recordID}

		gomega.Expect(relay.Handle(ctx, "form-2", message)).To(gomega.Succeed())
	})

	ginkgo.It("should reject unexpected messages", func() {
		gomega.Expect(relay.Handle(ctx, "form-1", "garbage")).NotTo(gomega.Succeed())
	})

	ginkgo.It("should stop on shutdown", func() {
		relay.Shutdown()
		gomega.Eventually(finished).Should(gomega.BeClosed())
	})
})

package async_test

import (
	"context"

	"dms-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var (
		broker *async.LocalBroker
		topic  async.BrokerTopicName
		ctx    context.Context
	)

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		topic = "form_records:182efcc3"
		ctx = context.TODO()
	})

	AfterEach(func() {
		broker.Stop()
	})

	Context("Publish", func() {
		It("should deliver to every subscriber of the topic", func() {
			first, err := broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())
			second, err := broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "record_created"})).To(Succeed())

			var msg async.BrokerMessage
			Eventually(first.Receiver).Should(Receive(&msg))
			Expect(msg.Event).To(Equal("record_created"))
			Eventually(second.Receiver).Should(Receive())
		})

		It("should not deliver to other topics", func() {
			other, err := broker.Subscribe("form_records:other")
			Expect(err).NotTo(HaveOccurred())
			_, err = broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(Succeed())
			Consistently(other.Receiver).ShouldNot(Receive())
		})

		It("should report topics without subscribers", func() {
			err := broker.Publish(ctx, "nobody", async.BrokerMessage{})
			Expect(err).To(MatchError(async.ErrTopicNotFound))
		})

		It("should drop messages for a full subscriber instead of blocking", func() {
			subscription, err := broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())

			for range 100 {
				Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(Succeed())
			}

			Expect(len(subscription.Receiver)).To(BeNumerically("<", 100))
		})
	})

	Context("Unsubscribe", func() {
		It("should close the receiver", func() {
			subscription, err := broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())

			Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())
			Eventually(subscription.Receiver).Should(BeClosed())
		})

		It("should forget the topic once empty", func() {
			subscription, err := broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())
			Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(MatchError(async.ErrTopicNotFound))
		})

		It("should report unknown subscriptions", func() {
			Expect(broker.Unsubscribe(topic, async.Subscription{ID: "x"})).To(MatchError(async.ErrTopicNotFound))

			_, err := broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())
			Expect(broker.Unsubscribe(topic, async.Subscription{ID: "x"})).To(MatchError(async.ErrSubscriptorNotFound))
		})
	})

	Context("Stop", func() {
		It("should close every receiver and refuse new subscriptions", func() {
			subscription, err := broker.Subscribe(topic)
			Expect(err).NotTo(HaveOccurred())

			broker.Stop()

			Eventually(subscription.Receiver).Should(BeClosed())
			_, err = broker.Subscribe(topic)
			Expect(err).To(MatchError(async.ErrBrokerStopped))
		})
	})
})

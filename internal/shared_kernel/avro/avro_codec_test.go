package avro_test

import (
	"time"

	"dms-server/internal/shared_kernel/avro"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/riferrei/srclient"
)

type codec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
}

func recordEvent() avro.AvroFormEvent {
	id := int64(7)
	return avro.AvroFormEvent{
		Type:       "record_created",
		FormID:     "0b6c5f1e-5a43-4a0e-9d3e-0f5b2b8c9d11",
		FormName:   "employees",
		RecordID:   &id,
		Columns:    []string{"user_email", "is_active"},
		OccurredAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		TraceID:    "4bf92f3577b34da6a3ce929d0e0e4736",
	}
}

func roundTrip(c codec) {
	It("should round trip a record event", func() {
		event := recordEvent()

		data, err := c.Encode(event)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := c.Decode(data)
		Expect(err).NotTo(HaveOccurred())

		got, ok := decoded.(*avro.AvroFormEvent)
		Expect(ok).To(BeTrue())
		Expect(got.OccurredAt).To(BeTemporally("==", event.OccurredAt))
		Expect(*got.RecordID).To(Equal(int64(7)))
		Expect(got.Columns).To(Equal(event.Columns))
		Expect(got.FormID).To(Equal(event.FormID))
		Expect(got.TraceID).To(Equal(event.TraceID))
	})

	It("should round trip a form event without record id", func() {
		event := recordEvent()
		event.Type = "form_deleted"
		event.RecordID = nil
		event.Columns = []string{}

		data, err := c.Encode(&event)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := c.Decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.(*avro.AvroFormEvent).RecordID).To(BeNil())
		Expect(decoded.(*avro.AvroFormEvent).Type).To(Equal("form_deleted"))
	})

	It("should reject other message types", func() {
		_, err := c.Encode("not an event")
		Expect(err).To(HaveOccurred())
	})
}

var _ = Describe("AvroCodec", func() {
	c, err := avro.NewAvroCodec()
	if err != nil {
		panic(err)
	}

	roundTrip(c)
})

var _ = Describe("ConfluentAvroCodec", func() {
	registry := srclient.CreateMockSchemaRegistryClient("http://registry.test")
	c, err := avro.NewConfluentAvroCodec(registry)
	if err != nil {
		panic(err)
	}

	roundTrip(c)

	It("should prefix the body with the magic byte and schema id", func() {
		data, err := c.Encode(recordEvent())
		Expect(err).NotTo(HaveOccurred())
		Expect(data[0]).To(Equal(byte(0)))

		schema, err := registry.GetLatestSchema(avro.FormEventSubject)
		Expect(err).NotTo(HaveOccurred())
		Expect(int(data[4])).To(Equal(schema.ID()))
	})

	It("should reject data without the wire header", func() {
		_, err := c.Decode([]byte{1, 2})
		Expect(err).To(HaveOccurred())

		_, err = c.Decode([]byte{9, 0, 0, 0, 1, 0})
		Expect(err).To(MatchError(ContainSubstring("magic byte")))
	})
})

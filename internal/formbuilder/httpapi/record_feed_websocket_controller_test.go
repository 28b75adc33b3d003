package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"dms-server/internal/formbuilder/communication"
	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/httpapi"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/async"
	"dms-server/internal/shared_kernel/authz"
	shareddomain "dms-server/internal/shared_kernel/domain"
	mockusecases "dms-server/test/unit/doubles/formbuilder/usecases"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("RecordFeedWebSocketController", func() {
	var (
		ctrl       *gomock.Controller
		forms      *mockusecases.MockFormRegistryService
		broker     *async.LocalBroker
		controller *httpapi.RecordFeedWebSocketController
		server     *httptest.Server
	)

	formID := shareddomain.ID("form-1")
	form := domain.LogicalForm{ID: formID, Name: "customer_feedback", Status: domain.FormStatusActive}

	dial := func(path string) (*websocket.Conn, *http.Response, error) {
		url := "ws" + strings.TrimPrefix(server.URL, "http") + path
		return websocket.DefaultDialer.Dial(url, nil)
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		forms = mockusecases.NewMockFormRegistryService(ctrl)
		broker = async.NewLocalBroker()
		controller = httpapi.NewRecordFeedWebSocketController(broker, forms)

		router := http.NewServeMux()
		controller.AddRoutes(router)
		server = httptest.NewServer(router)
	})

	AfterEach(func() {
		controller.Shutdown()
		server.Close()
		broker.Stop()
		ctrl.Finish()
	})

	It("should stream record events of the followed form", func() {
		forms.EXPECT().GetLogicalForm(gomock.Any(), formID).Return(form, nil)

		conn, _, err := dial("/ws/forms/form-1/records")
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		event := domain.NewRecordEvent(domain.EventRecordCreated, form, 42)
		Expect(broker.Publish(context.Background(), communication.RecordFeedTopic(formID), async.BrokerMessage{
			Event: string(event.Type),
			Value: event,
		})).To(Succeed())

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var message map[string]any
		Expect(conn.ReadJSON(&message)).To(Succeed())
		Expect(message).To(HaveKeyWithValue("type", "record_created"))
		Expect(message).To(HaveKeyWithValue("form_id", "form-1"))
		Expect(message).To(HaveKeyWithValue("record_id", BeNumerically("==", 42)))
	})

	It("should release the subscription when the client leaves", func() {
		forms.EXPECT().GetLogicalForm(gomock.Any(), formID).Return(form, nil)

		conn, _, err := dial("/ws/forms/form-1/records")
		Expect(err).NotTo(HaveOccurred())
		Eventually(controller.ClientCount).Should(Equal(1))

		conn.Close()

		Eventually(controller.ClientCount).Should(BeZero())
		Eventually(func() error {
			return broker.Publish(context.Background(), communication.RecordFeedTopic(formID), async.BrokerMessage{})
		}).Should(MatchError(async.ErrTopicNotFound))
	})

	It("should refuse the upgrade for unknown forms", func() {
		forms.EXPECT().GetLogicalForm(gomock.Any(), shareddomain.ID("missing")).Return(domain.LogicalForm{}, usecases.ErrFormNotFound)

		_, response, err := dial("/ws/forms/missing/records")
		Expect(err).To(MatchError(websocket.ErrBadHandshake))
		Expect(response.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("should refuse the upgrade when the user may not read records", func() {
		forms.EXPECT().GetLogicalForm(gomock.Any(), formID).Return(domain.LogicalForm{}, authz.ErrForbidden)

		_, response, err := dial("/ws/forms/form-1/records")
		Expect(err).To(MatchError(websocket.ErrBadHandshake))
		Expect(response.StatusCode).To(Equal(http.StatusForbidden))
	})
})

package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"dms-server/internal/formbuilder/communication"
	formdomain "dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/httpapi/internal"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/async"
	"dms-server/internal/infra/httpserver"
	"dms-server/internal/shared_kernel/domain"

	"github.com/gorilla/websocket"
)

const (
	_pingPeriod     = 54 * time.Second
	_pongWait       = 60 * time.Second
	_writeWait      = 10 * time.Second
	_maxMessageSize = 512

	recordFeedErrMessage = "failed to open record feed"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// feedClient is one websocket connection following the records of a form.
type feedClient struct {
	conn         *websocket.Conn
	formID       domain.ID
	subscription async.Subscription
	closeOnce    sync.Once
}

// RecordFeedWebSocketController streams record events of a form to websocket
// clients. Events reach it through the internal broker.
type RecordFeedWebSocketController struct {
	broker     async.InternalBroker
	forms      usecases.FormRegistryService
	clients    map[*websocket.Conn]*feedClient
	clientsMux sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewRecordFeedWebSocketController(broker async.InternalBroker, forms usecases.FormRegistryService) *RecordFeedWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	return &RecordFeedWebSocketController{
		broker:  broker,
		forms:   forms,
		clients: make(map[*websocket.Conn]*feedClient),
		ctx:     ctx,
		cancel:  cancel,
	}
}

var _ httpserver.Controller = (*RecordFeedWebSocketController)(nil)

func (wsc *RecordFeedWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/forms/{id}/records", wsc.handleWebSocket())
}

func (wsc *RecordFeedWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := domain.ID(r.PathValue("id"))

		// authorizes the caller and rejects unknown forms before upgrading
		if _, err := wsc.forms.GetLogicalForm(r.Context(), formID); err != nil {
			replyWithServiceError(w, err, "opening record feed", recordFeedErrMessage)
			return
		}

		topic := communication.RecordFeedTopic(formID)
		subscription, err := wsc.broker.Subscribe(topic)
		if err != nil {
			slog.Error("subscribing to record feed", slog.String("form_id", formID.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusServiceUnavailable, recordFeedErrMessage)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			_ = wsc.broker.Unsubscribe(topic, subscription)
			return
		}

		client := &feedClient{conn: conn, formID: formID, subscription: subscription}
		wsc.register(client)

		slog.Info("record feed client connected",
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("form_id", formID.String()))

		go wsc.writePump(client)
		go wsc.readPump(client)
	}
}

func (wsc *RecordFeedWebSocketController) register(client *feedClient) {
	wsc.clientsMux.Lock()
	defer wsc.clientsMux.Unlock()
	wsc.clients[client.conn] = client
}

// unregister releases the broker subscription and closes the connection. It is
// safe to call from both pumps.
func (wsc *RecordFeedWebSocketController) unregister(client *feedClient) {
	client.closeOnce.Do(func() {
		wsc.clientsMux.Lock()
		delete(wsc.clients, client.conn)
		total := len(wsc.clients)
		wsc.clientsMux.Unlock()

		err := wsc.broker.Unsubscribe(communication.RecordFeedTopic(client.formID), client.subscription)
		if err != nil {
			slog.Debug("record feed subscription already released", slog.String("error", err.Error()))
		}
		client.conn.Close()

		slog.Info("record feed client disconnected",
			slog.String("form_id", client.formID.String()),
			slog.Int("total_clients", total))
	})
}

func (wsc *RecordFeedWebSocketController) readPump(client *feedClient) {
	defer wsc.unregister(client)

	conn := client.conn
	conn.SetReadLimit(_maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(_pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(_pongWait))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			return
		}
	}
}

// writePump is the only writer of the connection.
func (wsc *RecordFeedWebSocketController) writePump(client *feedClient) {
	ticker := time.NewTicker(_pingPeriod)
	defer func() {
		ticker.Stop()
		wsc.unregister(client)
	}()

	conn := client.conn
	for {
		select {
		case <-wsc.ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(_writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(_writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case msg, ok := <-client.subscription.Receiver:
			if !ok {
				return
			}
			event, ok := msg.Value.(formdomain.FormEvent)
			if !ok {
				continue
			}

			conn.SetWriteDeadline(time.Now().Add(_writeWait))
			if err := conn.WriteJSON(internal.ToRecordFeedMessage(event)); err != nil {
				slog.Error("failed to write record event to websocket client",
					slog.String("form_id", client.formID.String()),
					slog.String("error", err.Error()))
				return
			}
		}
	}
}

func (wsc *RecordFeedWebSocketController) ClientCount() int {
	wsc.clientsMux.RLock()
	defer wsc.clientsMux.RUnlock()
	return len(wsc.clients)
}

func (wsc *RecordFeedWebSocketController) Shutdown() {
	slog.Info("shutting down record feed websocket controller")
	wsc.cancel()

	wsc.clientsMux.RLock()
	clients := make([]*feedClient, 0, len(wsc.clients))
	for _, client := range wsc.clients {
		clients = append(clients, client)
	}
	wsc.clientsMux.RUnlock()

	for _, client := range clients {
		wsc.unregister(client)
	}
}

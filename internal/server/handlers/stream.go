package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/servermanager/internal/client/state"
	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	// sendBuffer сообщений на клиента; медленный клиент теряет события
	sendBuffer = 32
)

// EventType различает сообщения websocket
type EventType string

const (
	EventState  EventType = "state"  // новое состояние Projector
	EventNotify EventType = "notify" // побочный эффект Notifier
)

// Имена событий Notifier
const (
	NotifyDismissDialog = "dismissDialog"
	NotifyResetForm     = "resetForm"
	NotifyClearProgress = "clearProgress"
)

// Event is one websocket message.
type Event struct {
	State  *models.AppState `json:"state,omitempty"`
	Type   EventType        `json:"type"`
	Name   string           `json:"event,omitempty"`
	Status api.Status       `json:"status,omitempty"`
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub рассылает состояния и события Notifier всем подключенным браузерам
type Hub struct {
	clients map[*wsClient]struct{}
	logger  *slog.Logger
	mu      sync.RWMutex
}

var _ state.Notifier = (*Hub)(nil)

// NewHub создает пустой hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*wsClient]struct{}),
		logger:  logger,
	}
}

// Run пересылает состояния из states всем клиентам, пока ctx не отменен или
// states не закрыт. При выходе все соединения закрываются.
func (h *Hub) Run(ctx context.Context, states <-chan models.AppState) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-states:
			if !ok {
				return
			}
			h.Broadcast(Event{Type: EventState, State: &st})
		}
	}
}

// Broadcast отправляет событие всем клиентам без блокировки
func (h *Hub) Broadcast(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("failed to encode websocket event", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("websocket client is too slow, event dropped",
				"remote_addr", c.conn.RemoteAddr().String(),
				"type", ev.Type)
		}
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) DismissDialog() {
	h.Broadcast(Event{Type: EventNotify, Name: NotifyDismissDialog})
}

func (h *Hub) ResetForm(defaultStatus api.Status) {
	h.Broadcast(Event{Type: EventNotify, Name: NotifyResetForm, Status: defaultStatus})
}

func (h *Hub) ClearProgress() {
	h.Broadcast(Event{Type: EventNotify, Name: NotifyClearProgress})
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("websocket client connected", "remote_addr", c.conn.RemoteAddr().String())
}

// unregister закрывает send, writePump после этого закрывает соединение
func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.logger.Debug("websocket client disconnected", "remote_addr", c.conn.RemoteAddr().String())
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// StreamHandler обслуживает GET /ws
type StreamHandler struct {
	hub       *Hub
	projector Projector
	logger    *slog.Logger
	upgrader  websocket.Upgrader
}

// NewStreamHandler создает handler websocket потока.
// CheckOrigin не задан: принимаются только запросы с того же origin.
func NewStreamHandler(logger *slog.Logger, hub *Hub, projector Projector) *StreamHandler {
	return &StreamHandler{
		hub:       hub,
		projector: projector,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// ServeWS обрабатывает GET /ws. Первым сообщением клиент получает текущее состояние.
func (s *StreamHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		s.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	c := &wsClient{conn: conn, send: make(chan []byte, sendBuffer)}
	st := s.projector.State()
	if msg, err := json.Marshal(Event{Type: EventState, State: &st}); err == nil {
		c.send <- msg
	}
	s.hub.register(c)

	go c.writePump(s.logger)
	c.readPump(s.hub, s.logger)
}

// readPump читает до ошибки, чтобы обрабатывать pong и close
func (c *wsClient) readPump(hub *Hub, logger *slog.Logger) {
	defer hub.unregister(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read error", slog.Any("error", err))
			}
			return
		}
	}
}

func (c *wsClient) writePump(logger *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("websocket write failed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"portal-chat/auth"
	"portal-chat/domain"
	"portal-chat/errors"
	"portal-chat/runtime"
	"portal-chat/services"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

// requestTimeout bounds every chat operation triggered by a frame.
const requestTimeout = 5 * time.Second

// Chat is the chat service as seen by the hub.
type Chat interface {
	Join(ctx context.Context, r services.JoinRequest) (runtime.Presence, error)
	Leave(ctx context.Context, connID string) (runtime.Departure, error)
	Send(ctx context.Context, connID, to, body string) (runtime.Delivery, error)
	ChangeState(ctx context.Context, connID string, state domain.PresenceState, target string) ([]string, error)
	History(ctx context.Context, connID, target string, offset, limit int) ([]domain.HistoryMessage, error)
	Search(ctx context.Context, connID, query string, limit int) ([]domain.HistoryMessage, error)
}

// Counters receives hub events for monitoring.
type Counters interface {
	IncrMessages()
	IncrConnections()
	IncrErrors()
}

type Settings struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	MaxMessageSize int64
	SendBufferSize int
}

// Hub maps connection ids to sockets and routes the outcome of every chat
// operation to the connections it returned.
type Hub struct {
	log      *slog.Logger
	chat     Chat
	tokens   auth.TokenIssuer
	counters Counters
	settings Settings
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub(log *slog.Logger, chat Chat, tokens auth.TokenIssuer, counters Counters, settings Settings) *Hub {
	return &Hub{
		log:      log.With(slog.String("component", "ws_hub")),
		chat:     chat,
		tokens:   tokens,
		counters: counters,
		settings: settings,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// embedded on third party portals
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// Handle upgrades /ws?portal=&page=&name=&nick=&token= and joins the chat.
// The visitor address is the client IP resolved by the router, which only
// believes forwarding headers set by a trusted proxy.
func (h *Hub) Handle(c *gin.Context) {
	h.serve(c.Writer, c.Request, c.ClientIP())
}

func (h *Hub) serve(w http.ResponseWriter, r *http.Request, ipAddress string) {
	q := r.URL.Query()
	identity := ""
	if token := q.Get("token"); token != "" {
		claims, err := h.tokens.ValidateToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		identity = claims.UserName()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Upgrade failed", "error", err)
		return
	}
	c := newClient(uuid.NewString(), conn, h.settings, h.log)
	h.register(c)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	presence, err := h.chat.Join(ctx, services.JoinRequest{
		PortalURI:    q.Get("portal"),
		PageURI:      q.Get("page"),
		ConnectionID: c.id,
		UserName:     q.Get("name"),
		NickName:     q.Get("nick"),
		IPAddress:    ipAddress,
		Identity:     identity,
	})
	cancel()
	if err != nil {
		h.reply(c, err)
		h.unregister(c)
		go c.write()
		return
	}
	c.userName = presence.User.Name
	h.counters.IncrConnections()
	h.log.Info("Connection joined", "connectionID", c.id, "roomID", presence.Room.ID, "user", presence.User.Name)

	h.deliver([]string{c.id}, TypeWelcome, WelcomePayload{
		ConnectionID: c.id,
		RoomID:       presence.Room.ID,
		User:         toUserView(presence.User),
		Users:        toUserViews(presence.OtherUsers),
	})
	h.deliver(presence.OtherConnections, TypeJoined, toUserView(presence.User))

	go c.write()
	go func() {
		c.read(h.handle)
		h.leave(c)
	}()
}

func (h *Hub) handle(c *client, f Frame) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var err error
	switch f.Type {
	case TypeMessage:
		err = h.onMessage(ctx, c, f.Payload)
	case TypeState:
		err = h.onState(ctx, c, f.Payload)
	case TypeHistory:
		err = h.onHistory(ctx, c, f.Payload)
	case TypeSearch:
		err = h.onSearch(ctx, c, f.Payload)
	default:
		err = errors.ErrInvalidRequest
	}
	if err != nil {
		h.reply(c, err)
	}
}

func (h *Hub) onMessage(ctx context.Context, c *client, payload json.RawMessage) error {
	var r messageRequest
	if err := decode(payload, &r); err != nil {
		return err
	}
	delivery, err := h.chat.Send(ctx, c.id, r.To, r.Body)
	if err != nil {
		return err
	}
	h.counters.IncrMessages()
	h.deliver(delivery.Recipients, TypeMessage, MessagePayload{
		EventID:   delivery.Entry.EventID,
		From:      delivery.Message.From.Name,
		To:        delivery.Message.To.Name,
		Body:      delivery.Message.Body,
		Direction: string(delivery.Message.Direction()),
		At:        delivery.Message.CreatedAt,
	})
	return nil
}

func (h *Hub) onState(ctx context.Context, c *client, payload json.RawMessage) error {
	var r stateRequest
	if err := decode(payload, &r); err != nil {
		return err
	}
	conns, err := h.chat.ChangeState(ctx, c.id, domain.PresenceState(r.State), r.To)
	if err != nil {
		return err
	}
	h.deliver(lo.Without(conns, c.id), TypeState, StatePayload{From: c.userName, State: r.State})
	return nil
}

func (h *Hub) onHistory(ctx context.Context, c *client, payload json.RawMessage) error {
	var r historyRequest
	if err := decode(payload, &r); err != nil {
		return err
	}
	messages, err := h.chat.History(ctx, c.id, r.Target, r.Offset, r.Limit)
	if err != nil {
		return err
	}
	h.deliver([]string{c.id}, TypeHistory, TranscriptPayload{Target: r.Target, Messages: toMessagePayloads(messages)})
	return nil
}

func (h *Hub) onSearch(ctx context.Context, c *client, payload json.RawMessage) error {
	var r searchRequest
	if err := decode(payload, &r); err != nil {
		return err
	}
	messages, err := h.chat.Search(ctx, c.id, r.Query, r.Limit)
	if err != nil {
		return err
	}
	h.deliver([]string{c.id}, TypeSearch, TranscriptPayload{Query: r.Query, Messages: toMessagePayloads(messages)})
	return nil
}

// leave runs once the read pump is over.
func (h *Hub) leave(c *client) {
	h.unregister(c)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	departure, err := h.chat.Leave(ctx, c.id)
	if err != nil {
		h.counters.IncrErrors()
		h.log.Error("Failed to leave", "connectionID", c.id, "error", err)
		return
	}
	if departure.UserLeft {
		h.deliver(departure.Notify, TypeLeft, LeftPayload{User: departure.User.Name, RoomDeleted: departure.RoomDeleted})
	}
	h.log.Info("Connection left", "connectionID", c.id, "userLeft", departure.UserLeft, "roomDeleted", departure.RoomDeleted)
}

// reply reports an error to the originating socket only.
func (h *Hub) reply(c *client, err error) {
	h.counters.IncrErrors()
	payload := toErrorPayload(err)
	if payload.Code == "Internal" {
		h.log.Error("Chat operation failed", "connectionID", c.id, "error", err)
	} else {
		h.log.Debug("Chat operation rejected", "connectionID", c.id, "error", err)
	}
	raw, encErr := encode(TypeError, payload)
	if encErr != nil {
		return
	}
	c.enqueue(raw)
}

// deliver encodes the frame once and pushes it to every live connection.
func (h *Hub) deliver(connIDs []string, frameType string, payload any) {
	if len(connIDs) == 0 {
		return
	}
	raw, err := encode(frameType, payload)
	if err != nil {
		h.log.Error("Failed to encode frame", "type", frameType, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range connIDs {
		if c, ok := h.clients[id]; ok {
			c.enqueue(raw)
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	c.close()
}

// CloseAll closes every socket. Their read pumps then run the leave path.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	clients := lo.Values(h.clients)
	h.mu.RUnlock()
	for _, c := range clients {
		_ = c.conn.Close()
	}
}

// Size is the number of live sockets.
func (h *Hub) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func decode(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return errors.ErrInvalidRequest
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return errors.ErrInvalidRequest
	}
	return nil
}

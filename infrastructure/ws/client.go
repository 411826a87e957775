package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

/*
client owns one websocket connection.

Frames are written by the write pump only, gorilla/websocket allowing a single
concurrent writer. Every other goroutine goes through the send channel.
*/
type client struct {
	id       string
	userName string
	conn     *websocket.Conn
	settings Settings
	log      *slog.Logger

	mu     sync.Mutex
	send   chan []byte
	closed bool

	// a new ping is only sent once the previous one was answered
	hasAnsweredPing bool
	pingTimestamp   time.Time
	delay           time.Duration
}

func newClient(id string, conn *websocket.Conn, settings Settings, log *slog.Logger) *client {
	now := time.Now()
	c := &client{
		id:              id,
		conn:            conn,
		settings:        settings,
		log:             log.With(slog.String("connectionID", id)),
		send:            make(chan []byte, settings.SendBufferSize),
		hasAnsweredPing: true,
		pingTimestamp:   now,
	}
	c.conn.SetReadLimit(settings.MaxMessageSize)
	_ = c.conn.SetReadDeadline(now.Add(settings.PongWait))
	return c
}

// enqueue never blocks. A client whose buffer is full loses the frame.
func (c *client) enqueue(raw []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- raw:
		return true
	default:
		c.log.Warn("Send buffer full, frame dropped", "size", len(raw))
		return false
	}
}

// close stops the write pump once the pending frames are flushed.
func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// read decodes frames sequentially and hands them to handle. It returns when
// the socket fails or the peer goes away.
func (c *client) read(handle func(*client, Frame)) {
	for {
		var f Frame
		if err := c.conn.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("Unexpected socket close", "error", err)
			}
			return
		}
		if f.Type == TypePong {
			c.handlePong()
			continue
		}
		handle(c, f)
	}
}

// write flushes the send channel and keeps the heartbeat going.
func (c *client) write() {
	pingTicker := time.NewTicker(c.settings.PingPeriod)
	defer func() {
		pingTicker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case raw, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.settings.WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}

		case <-pingTicker.C:
			c.mu.Lock()
			answered := c.hasAnsweredPing
			delay := c.delay
			c.mu.Unlock()
			if !answered {
				continue
			}

			now := time.Now()
			_ = c.conn.SetWriteDeadline(now.Add(c.settings.WriteWait))
			if err := c.conn.WriteJSON(Frame{Type: TypePing, Payload: json.RawMessage(delayJSON(delay))}); err != nil {
				return
			}
			c.mu.Lock()
			c.pingTimestamp = now
			c.hasAnsweredPing = false
			c.mu.Unlock()
		}
	}
}

// handlePong measures the round trip and extends the read deadline.
func (c *client) handlePong() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasAnsweredPing {
		return
	}
	c.hasAnsweredPing = true
	c.delay = time.Since(c.pingTimestamp)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.settings.PongWait))
}

func delayJSON(d time.Duration) []byte {
	raw, _ := json.Marshal(map[string]int64{"delay_ms": d.Milliseconds()})
	return raw
}

package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// OCR text of one card is small
	maxMessageSize = 64 * 1024

	// Time allowed to reconcile one scan
	scanTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The capture UI is served from its own origin
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is a middleman between the websocket connection and the hub
type Client struct {
	hub *Hub

	// The WebSocket connection
	conn *websocket.Conn

	// Buffered channel of outbound frames
	send chan []byte

	// Handles capture events read from the connection
	process func(ctx context.Context, msg Inbound) Outbound

	addr   string
	logger zerolog.Logger
}

// readPump reads capture events and answers each with a scan_result
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().Str("addr", c.addr).Msg("WebSocket closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Str("addr", c.addr).Msg("Unexpected WebSocket close")
			} else {
				c.logger.Debug().Err(err).Str("addr", c.addr).Msg("WebSocket read error")
			}
			return
		}

		var msg Inbound
		var out Outbound
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug().Err(err).Str("addr", c.addr).Msg("Failed to unmarshal client message")
			out = Outbound{Type: TypeError, Error: "Invalid message format"}
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
			out = c.process(ctx, msg)
			cancel()
		}

		c.reply(out)
	}
}

func (c *Client) reply(out Outbound) {
	data, err := json.Marshal(out)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to marshal reply")
		return
	}

	select {
	case c.hub.direct <- reply{client: c, data: data}:
	case <-c.hub.done:
	}
}

// writePump writes hub frames to the connection, one message per frame
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

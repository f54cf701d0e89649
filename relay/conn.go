package relay

import (
	"log"
	"time"

	"github.com/automoto/pixelrun/shared/messages"
	"github.com/gorilla/websocket"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 1024
	sendBufSize       = 64
	maxMessagesPerSec = 60
)

// Conn is one websocket connection. player, chatSeq and joinOrder belong to
// the hub goroutine.
type Conn struct {
	hub        *Hub
	ws         *websocket.Conn
	codec      messages.Codec
	send       chan []byte
	remoteAddr string

	player    messages.Player
	chatSeq   int
	joinOrder int

	msgCount   int
	msgResetAt time.Time
}

func newConn(hub *Hub, ws *websocket.Conn, codec messages.Codec, remoteAddr string) *Conn {
	return &Conn{
		hub:        hub,
		ws:         ws,
		codec:      codec,
		send:       make(chan []byte, sendBufSize),
		remoteAddr: remoteAddr,
	}
}

// enqueue encodes env for this connection. A full queue drops the frame.
func (c *Conn) enqueue(env messages.Envelope) {
	data, err := c.codec.Marshal(env)
	if err != nil {
		log.Printf("[relay] encode %s: %v", env.Type, err)
		return
	}
	select {
	case c.send <- data:
	default:
		// Client too slow, drop message
	}
}

// readPump decodes frames and hands them to the hub until the connection fails.
func (c *Conn) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[relay] read error from %s: %v", c.remoteAddr, err)
			}
			return
		}

		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("[relay] rate limit exceeded for %s, disconnecting", c.remoteAddr)
			return
		}

		var env messages.Envelope
		if err := c.codec.Unmarshal(data, &env); err != nil {
			continue
		}
		select {
		case c.hub.inbound <- inbound{conn: c, env: env}:
		case <-c.hub.done:
			return
		}
	}
}

// writePump sends queued frames and keepalive pings. It exits when the hub
// closes the send queue.
func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	frameType := websocket.TextMessage
	if c.codec.Binary() {
		frameType = websocket.BinaryMessage
	}

	for {
		select {
		case data, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(frameType, data); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Package network connects the game to the presence relay.
package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/automoto/pixelrun/shared/messages"
	"github.com/coder/websocket"
)

const (
	dialTimeout  = 5 * time.Second
	writeTimeout = 5 * time.Second
	outboxSize   = 16
	readLimit    = 1 << 16
)

var ErrNotConnected = errors.New("network: not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return "unknown"
}

// session is one dial attempt. Goroutines of an old session stop touching
// the client once it is replaced.
type session struct {
	cancel     context.CancelFunc
	outbox     chan messages.Envelope
	writerDone chan struct{}
}

// Client manages a websocket connection to the presence relay.
// All shared fields are protected by mu (the read and write pumps run on their own goroutines).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	self      messages.Player
	roster    map[string]messages.Player
	session   *session
}

func NewClient() *Client {
	return &Client{
		state:  StateDisconnected,
		roster: make(map[string]messages.Player),
	}
}

// Connect dials the relay in a background goroutine and announces name.
// address is host:port or a ws:// URL. A previous connection is dropped.
func (c *Client) Connect(address, name string, codec messages.Codec) {
	c.Disconnect()

	u, err := RelayURL(address, codec)
	if err != nil {
		c.mu.Lock()
		c.state = StateError
		c.lastError = err
		c.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		cancel:     cancel,
		outbox:     make(chan messages.Envelope, outboxSize),
		writerDone: make(chan struct{}),
	}

	c.mu.Lock()
	c.session = s
	c.state = StateConnecting
	c.lastError = nil
	c.self = messages.Player{}
	c.roster = make(map[string]messages.Player)
	c.mu.Unlock()

	s.outbox <- messages.Hello(name)
	go c.run(ctx, s, u, codec)
}

func (c *Client) run(ctx context.Context, s *session, u string, codec messages.Codec) {
	// The writer must not outlive the connection, however it ends.
	defer s.cancel()

	dialCtx, cancelDial := context.WithTimeout(ctx, dialTimeout)
	conn, _, err := websocket.Dial(dialCtx, u, nil)
	cancelDial()
	if err != nil {
		close(s.writerDone)
		c.setError(s, fmt.Errorf("connection failed: %w", err))
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(readLimit)

	if !c.update(s, func() { c.state = StateConnected }) {
		close(s.writerDone)
		return
	}
	log.Printf("[client] connected to %s", u)

	go c.writePump(ctx, s, conn, codec)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil || websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				log.Printf("[client] disconnected")
				c.update(s, func() { c.state = StateDisconnected })
			} else {
				log.Printf("[client] read error: %v", err)
				c.setError(s, fmt.Errorf("connection lost: %w", err))
			}
			return
		}

		var env messages.Envelope
		if err := codec.Unmarshal(data, &env); err != nil {
			continue
		}
		c.update(s, func() { c.apply(env) })
	}
}

func (c *Client) writePump(ctx context.Context, s *session, conn *websocket.Conn, codec messages.Codec) {
	defer close(s.writerDone)

	frameType := websocket.MessageText
	if codec.Binary() {
		frameType = websocket.MessageBinary
	}

	for {
		select {
		case env := <-s.outbox:
			payload, err := codec.Marshal(env)
			if err != nil {
				log.Printf("[client] encode %s: %v", env.Type, err)
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err = conn.Write(writeCtx, frameType, payload)
			cancel()
			if err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// apply folds one relay frame into the roster. Caller holds mu.
func (c *Client) apply(env messages.Envelope) {
	switch env.Type {
	case messages.TypeCurrentPlayer:
		if env.Player != nil {
			c.self = *env.Player
			delete(c.roster, c.self.ID)
		}
	case messages.TypeExistingPlayers:
		c.roster = make(map[string]messages.Player, len(env.Players))
		for _, p := range env.Players {
			c.roster[p.ID] = p
		}
	case messages.TypeNewPlayer, messages.TypePlayerMoved:
		if env.Player != nil && env.Player.ID != c.self.ID {
			c.roster[env.Player.ID] = *env.Player
		}
	case messages.TypeChat:
		if env.PlayerID == c.self.ID {
			c.self.ChatMessage = env.ChatMessage
		} else if p, ok := c.roster[env.PlayerID]; ok {
			p.ChatMessage = env.ChatMessage
			c.roster[env.PlayerID] = p
		}
	case messages.TypePlayerDisconnected:
		delete(c.roster, env.PlayerID)
	}
}

// SendPosition queues a position update. It is dropped if the queue is full.
func (c *Client) SendPosition(x, y float64) error {
	return c.send(messages.Move(x, y))
}

func (c *Client) SendChat(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return c.send(messages.Chat(text))
}

func (c *Client) send(env messages.Envelope) error {
	c.mu.RLock()
	s, state := c.session, c.state
	c.mu.RUnlock()

	if s == nil || state != StateConnected {
		return ErrNotConnected
	}
	select {
	case s.outbox <- env:
	default:
	}
	return nil
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	s := c.session
	c.session = nil
	c.state = StateDisconnected
	c.roster = make(map[string]messages.Player)
	c.mu.Unlock()

	if s != nil {
		s.cancel()
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Self returns the local player as the relay sees it, once assigned.
func (c *Client) Self() (messages.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.self, c.self.ID != ""
}

// Roster returns a snapshot of the other players, ordered by id.
func (c *Client) Roster() []messages.Player {
	c.mu.RLock()
	out := make([]messages.Player, 0, len(c.roster))
	for _, p := range c.roster {
		out = append(out, p)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// update runs fn under the lock if s is still the current session.
func (c *Client) update(s *session, fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != s {
		return false
	}
	fn()
	return true
}

func (c *Client) setError(s *session, err error) {
	c.update(s, func() {
		c.state = StateError
		c.lastError = err
	})
}

// RelayURL builds the websocket URL for a relay address such as
// "localhost:7373" or "ws://host/ws".
func RelayURL(address string, codec messages.Codec) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("network: empty relay address")
	}
	if !strings.Contains(address, "://") {
		address = "ws://" + address
	}
	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("network: bad relay address %q: %w", address, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("network: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("network: bad relay address %q", address)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/ws"
	}
	q := u.Query()
	q.Set("codec", codec.Name())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

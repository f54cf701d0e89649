// Package relay is the presence relay: it assigns each websocket connection a
// player id and rebroadcasts position and chat frames to the other players.
// It runs no game simulation.
package relay

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/shared/messages"
	"github.com/google/uuid"
)

// Options configures a Hub.
type Options struct {
	ChatTTL       time.Duration // chat lines are cleared after this long
	MaxNameLength int           // runes
	MaxChatLength int           // runes
}

// DefaultOptions returns the shared network settings.
func DefaultOptions() Options {
	return Options{
		ChatTTL:       cfg.Network.ChatTTL,
		MaxNameLength: cfg.Network.MaxNameLength,
		MaxChatLength: cfg.Network.MaxChatLength,
	}
}

type inbound struct {
	conn *Conn
	env  messages.Envelope
}

type chatExpiry struct {
	playerID string
	seq      int
}

// state is the player map. Only the hub goroutine touches it.
type state struct {
	players map[string]*Conn
	joined  int
}

// Hub processes connects, disconnects and frames one at a time.
type Hub struct {
	opts       Options
	register   chan *Conn
	unregister chan *Conn
	inbound    chan inbound
	expire     chan chatExpiry
	done       chan struct{}
	count      atomic.Int64
}

func NewHub(opts Options) *Hub {
	return &Hub{
		opts:       opts,
		register:   make(chan *Conn),
		unregister: make(chan *Conn),
		inbound:    make(chan inbound),
		expire:     make(chan chatExpiry),
		done:       make(chan struct{}),
	}
}

// Run processes events until ctx is cancelled, then closes every connection's
// send queue.
func (h *Hub) Run(ctx context.Context) {
	st := &state{players: make(map[string]*Conn)}
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.handleConnect(st, c)
		case c := <-h.unregister:
			h.handleDisconnect(st, c)
		case in := <-h.inbound:
			h.handleFrame(st, in.conn, in.env)
		case exp := <-h.expire:
			h.handleChatExpiry(st, exp)
		case <-ctx.Done():
			for id, c := range st.players {
				delete(st.players, id)
				close(c.send)
			}
			h.count.Store(0)
			return
		}
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// PlayerCount is the number of connected players. Safe from any goroutine.
func (h *Hub) PlayerCount() int {
	return int(h.count.Load())
}

func (h *Hub) handleConnect(st *state, c *Conn) {
	id := uuid.NewString()
	st.joined++
	c.joinOrder = st.joined
	c.player = messages.Player{ID: id, Name: "player-" + id[:4]}

	existing := make([]*Conn, 0, len(st.players))
	for _, other := range st.players {
		existing = append(existing, other)
	}
	sort.Slice(existing, func(i, j int) bool { return existing[i].joinOrder < existing[j].joinOrder })
	players := make([]messages.Player, len(existing))
	for i, other := range existing {
		players[i] = other.player
	}

	st.players[id] = c
	h.count.Store(int64(len(st.players)))

	c.enqueue(messages.CurrentPlayer(c.player))
	c.enqueue(messages.ExistingPlayers(players))
	h.broadcast(st, messages.NewPlayer(c.player), c)
	log.Printf("[relay] %s connected from %s (%d online)", id, c.remoteAddr, len(st.players))
}

func (h *Hub) handleDisconnect(st *state, c *Conn) {
	id := c.player.ID
	if st.players[id] != c {
		return
	}
	delete(st.players, id)
	close(c.send)
	h.count.Store(int64(len(st.players)))

	h.broadcast(st, messages.PlayerDisconnected(id), nil)
	log.Printf("[relay] %s disconnected (%d online)", id, len(st.players))
}

func (h *Hub) handleFrame(st *state, c *Conn, env messages.Envelope) {
	if st.players[c.player.ID] != c {
		return
	}
	switch env.Type {
	case messages.TypeMove:
		h.handleMove(st, c, env)
	case messages.TypeChat:
		h.handleChat(st, c, env)
	case messages.TypeHello:
		h.handleHello(st, c, env)
	default:
		log.Printf("[relay] dropped %q frame from %s", env.Type, c.player.ID)
	}
}

func (h *Hub) handleMove(st *state, c *Conn, env messages.Envelope) {
	x, y, ok := env.Position()
	if !ok || !finite(x) || !finite(y) {
		return
	}
	c.player.Pos = [2]float64{x, y}
	h.broadcast(st, messages.PlayerMoved(c.player), c)
}

func (h *Hub) handleChat(st *state, c *Conn, env messages.Envelope) {
	text := truncate(strings.TrimSpace(env.ChatMessage), h.opts.MaxChatLength)
	if text == "" {
		return
	}
	c.player.ChatMessage = text
	c.chatSeq++
	h.broadcast(st, messages.ChatFrom(c.player.ID, text), nil)

	exp := chatExpiry{playerID: c.player.ID, seq: c.chatSeq}
	time.AfterFunc(h.opts.ChatTTL, func() {
		select {
		case h.expire <- exp:
		case <-h.done:
		}
	})
}

// handleChatExpiry clears a chat line unless a newer one replaced it.
func (h *Hub) handleChatExpiry(st *state, exp chatExpiry) {
	c, ok := st.players[exp.playerID]
	if !ok || c.chatSeq != exp.seq || c.player.ChatMessage == "" {
		return
	}
	c.player.ChatMessage = ""
	h.broadcast(st, messages.ChatFrom(c.player.ID, ""), nil)
}

func (h *Hub) handleHello(st *state, c *Conn, env messages.Envelope) {
	name := truncate(strings.TrimSpace(env.Name), h.opts.MaxNameLength)
	if name == "" || name == c.player.Name {
		return
	}
	c.player.Name = name
	c.enqueue(messages.CurrentPlayer(c.player))
	h.broadcast(st, messages.PlayerMoved(c.player), c)
}

// broadcast queues env for every player except exclude.
func (h *Hub) broadcast(st *state, env messages.Envelope, exclude *Conn) {
	for _, c := range st.players {
		if c == exclude {
			continue
		}
		c.enqueue(env)
	}
}

func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

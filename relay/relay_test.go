package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/automoto/pixelrun/shared/messages"
	"github.com/gorilla/websocket"
)

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func testOptions() Options {
	return Options{ChatTTL: 150 * time.Millisecond, MaxNameLength: 16, MaxChatLength: 120}
}

// startTestServer runs a hub behind an httptest.Server and returns the
// server and its websocket URL.
func startTestServer(t *testing.T, opts Options) (*httptest.Server, *Hub, string) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(opts)
	go hub.Run(ctx)

	srv := httptest.NewServer(SetupRoutes(hub, t.TempDir()))
	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-hub.Done()
	})

	return srv, hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

type peer struct {
	conn  *websocket.Conn
	codec messages.Codec
	self  messages.Player
}

// join dials the relay and reads the currentPlayer and existingPlayers frames.
func join(t *testing.T, wsURL string, codec messages.Codec) (*peer, []messages.Player) {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?codec="+codec.Name(), nil)
	if err != nil {
		t.Fatalf("dial WS: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	p := &peer{conn: conn, codec: codec}
	current := p.read(t)
	if current.Type != messages.TypeCurrentPlayer || current.Player == nil {
		t.Fatalf("expected currentPlayer, got %+v", current)
	}
	p.self = *current.Player

	existing := p.read(t)
	if existing.Type != messages.TypeExistingPlayers {
		t.Fatalf("expected existingPlayers, got %s", existing.Type)
	}
	return p, existing.Players
}

func (p *peer) read(t *testing.T) messages.Envelope {
	t.Helper()
	p.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	frameType, raw, err := p.conn.ReadMessage()
	if err != nil {
		t.Fatalf("read WS: %v", err)
	}
	wantType := websocket.TextMessage
	if p.codec.Binary() {
		wantType = websocket.BinaryMessage
	}
	if frameType != wantType {
		t.Fatalf("frame type = %d, want %d", frameType, wantType)
	}
	var env messages.Envelope
	if err := p.codec.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env
}

func (p *peer) send(t *testing.T, env messages.Envelope) {
	t.Helper()
	data, err := p.codec.Marshal(env)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	frameType := websocket.TextMessage
	if p.codec.Binary() {
		frameType = websocket.BinaryMessage
	}
	if err := p.conn.WriteMessage(frameType, data); err != nil {
		t.Fatalf("write WS: %v", err)
	}
}

// expectSilence fails if a frame arrives within d. The connection is unusable afterwards.
func (p *peer) expectSilence(t *testing.T, d time.Duration) {
	t.Helper()
	p.conn.SetReadDeadline(time.Now().Add(d))
	if _, raw, err := p.conn.ReadMessage(); err == nil {
		t.Fatalf("unexpected frame: %s", raw)
	}
}

func TestConnectAnnouncesPlayers(t *testing.T) {
	_, _, wsURL := startTestServer(t, testOptions())

	a, existing := join(t, wsURL, messages.JSON)
	if !uuidRegex.MatchString(a.self.ID) {
		t.Errorf("id %q is not a uuid", a.self.ID)
	}
	if len(existing) != 0 {
		t.Fatalf("first player saw %d existing players", len(existing))
	}

	b, existing := join(t, wsURL, messages.JSON)
	if len(existing) != 1 || existing[0].ID != a.self.ID {
		t.Fatalf("second player saw %+v, want [%s]", existing, a.self.ID)
	}
	if a.self.ID == b.self.ID {
		t.Fatal("duplicate player id")
	}

	announced := a.read(t)
	if announced.Type != messages.TypeNewPlayer || announced.Player.ID != b.self.ID {
		t.Fatalf("expected newPlayer %s, got %+v", b.self.ID, announced)
	}
}

func TestMoveIsRelayedToOthers(t *testing.T) {
	_, _, wsURL := startTestServer(t, testOptions())
	a, _ := join(t, wsURL, messages.JSON)
	b, _ := join(t, wsURL, messages.JSON)
	a.read(t) // newPlayer b

	a.send(t, messages.Move(10, 20))
	moved := b.read(t)
	if moved.Type != messages.TypePlayerMoved || moved.Player == nil {
		t.Fatalf("expected playerMoved, got %+v", moved)
	}
	if moved.Player.ID != a.self.ID || moved.Player.Pos != [2]float64{10, 20} {
		t.Fatalf("moved = %+v", *moved.Player)
	}

	// The mover gets nothing back; a later joiner sees the new position.
	c, existing := join(t, wsURL, messages.JSON)
	_ = c
	found := false
	for _, p := range existing {
		if p.ID == a.self.ID && p.Pos == [2]float64{10, 20} {
			found = true
		}
	}
	if !found {
		t.Fatalf("existingPlayers %+v missing moved player", existing)
	}
	if next := a.read(t); next.Type != messages.TypeNewPlayer {
		t.Fatalf("mover received %s before newPlayer", next.Type)
	}
}

func TestMalformedFramesAreDropped(t *testing.T) {
	_, _, wsURL := startTestServer(t, testOptions())
	a, _ := join(t, wsURL, messages.JSON)
	b, _ := join(t, wsURL, messages.JSON)
	a.read(t)

	if err := a.conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	a.send(t, messages.Envelope{Type: messages.TypeMove, Pos: []float64{1}})
	a.send(t, messages.Envelope{Type: "teleport"})
	a.send(t, messages.Move(5, 6))

	moved := b.read(t)
	if moved.Type != messages.TypePlayerMoved || moved.Player.Pos != [2]float64{5, 6} {
		t.Fatalf("expected the valid move, got %+v", moved)
	}
}

func TestChatIsClearedAfterTTL(t *testing.T) {
	_, _, wsURL := startTestServer(t, testOptions())
	a, _ := join(t, wsURL, messages.JSON)
	b, _ := join(t, wsURL, messages.JSON)
	a.read(t)

	a.send(t, messages.Chat("  hello  "))
	for _, p := range []*peer{a, b} {
		chat := p.read(t)
		if chat.Type != messages.TypeChat || chat.PlayerID != a.self.ID || chat.ChatMessage != "hello" {
			t.Fatalf("expected chat from %s, got %+v", a.self.ID, chat)
		}
	}

	start := time.Now()
	cleared := b.read(t)
	if cleared.Type != messages.TypeChat || cleared.PlayerID != a.self.ID || cleared.ChatMessage != "" {
		t.Fatalf("expected chat clear, got %+v", cleared)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("clear took %v", time.Since(start))
	}
}

func TestNewerChatPostponesClear(t *testing.T) {
	opts := testOptions()
	_, _, wsURL := startTestServer(t, opts)
	a, _ := join(t, wsURL, messages.JSON)

	a.send(t, messages.Chat("one"))
	if got := a.read(t); got.ChatMessage != "one" {
		t.Fatalf("got %+v", got)
	}
	time.Sleep(opts.ChatTTL / 2)
	a.send(t, messages.Chat("two"))
	if got := a.read(t); got.ChatMessage != "two" {
		t.Fatalf("got %+v", got)
	}

	cleared := a.read(t)
	if cleared.Type != messages.TypeChat || cleared.ChatMessage != "" {
		t.Fatalf("expected a single clear, got %+v", cleared)
	}
	a.expectSilence(t, opts.ChatTTL*2)
}

func TestHelloTruncatesName(t *testing.T) {
	_, _, wsURL := startTestServer(t, testOptions())
	a, _ := join(t, wsURL, messages.JSON)
	b, _ := join(t, wsURL, messages.JSON)
	a.read(t)

	a.send(t, messages.Hello("  abcdefghijklmnopqrstuvwxyz "))
	self := a.read(t)
	if self.Type != messages.TypeCurrentPlayer || self.Player.Name != "abcdefghijklmnop" {
		t.Fatalf("echo = %+v", self)
	}
	renamed := b.read(t)
	if renamed.Type != messages.TypePlayerMoved || renamed.Player.Name != "abcdefghijklmnop" {
		t.Fatalf("rename = %+v", renamed)
	}
}

func TestDisconnectIsBroadcast(t *testing.T) {
	_, hub, wsURL := startTestServer(t, testOptions())
	a, _ := join(t, wsURL, messages.JSON)
	b, _ := join(t, wsURL, messages.JSON)
	a.read(t)

	b.conn.Close()
	gone := a.read(t)
	if gone.Type != messages.TypePlayerDisconnected || gone.PlayerID != b.self.ID {
		t.Fatalf("expected playerDisconnected %s, got %+v", b.self.ID, gone)
	}
	if n := hub.PlayerCount(); n != 1 {
		t.Fatalf("PlayerCount = %d, want 1", n)
	}
}

func TestMsgpackCodec(t *testing.T) {
	_, _, wsURL := startTestServer(t, testOptions())
	a, _ := join(t, wsURL, messages.Msgpack)
	b, _ := join(t, wsURL, messages.JSON)
	a.read(t)

	b.send(t, messages.Move(7, 8))
	moved := a.read(t)
	if moved.Type != messages.TypePlayerMoved || moved.Player.Pos != [2]float64{7, 8} {
		t.Fatalf("msgpack peer got %+v", moved)
	}

	a.send(t, messages.Move(1, 2))
	if got := b.read(t); got.Player == nil || got.Player.Pos != [2]float64{1, 2} {
		t.Fatalf("json peer got %+v", got)
	}
}

func TestUnknownCodecIsRejected(t *testing.T) {
	_, _, wsURL := startTestServer(t, testOptions())
	_, resp, err := websocket.DefaultDialer.Dial(wsURL+"?codec=xml", nil)
	if err == nil {
		t.Fatal("dial succeeded with an unknown codec")
	}
	if resp == nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("response = %v, want 400", resp)
	}
}

func TestHealth(t *testing.T) {
	srv, _, wsURL := startTestServer(t, testOptions())
	join(t, wsURL, messages.JSON)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Players != 1 {
		t.Fatalf("health = %+v", body)
	}
}

func TestShutdownClosesConnections(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(testOptions())
	go hub.Run(ctx)
	srv := httptest.NewServer(SetupRoutes(hub, ""))
	defer srv.Close()

	a, _ := join(t, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", messages.JSON)
	cancel()
	<-hub.Done()

	a.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := a.conn.ReadMessage(); err == nil {
		t.Fatal("connection still open after shutdown")
	}
}

package network

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/pixelrun/relay"
	"github.com/automoto/pixelrun/shared/messages"
)

func startRelay(t *testing.T) string {
	t.Helper()
	addr, _ := startStoppableRelay(t)
	return addr
}

// startStoppableRelay also returns a func that shuts the hub down, which
// closes every connection from the relay side.
func startStoppableRelay(t *testing.T) (string, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := relay.NewHub(relay.Options{ChatTTL: time.Minute, MaxNameLength: 16, MaxChatLength: 120})
	go hub.Run(ctx)
	srv := httptest.NewServer(relay.SetupRoutes(hub, ""))
	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-hub.Done()
	})
	stop := func() {
		cancel()
		<-hub.Done()
	}
	return strings.TrimPrefix(srv.URL, "http://"), stop
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func connected(t *testing.T, addr, name string, codec messages.Codec) *Client {
	t.Helper()
	c := NewClient()
	t.Cleanup(c.Disconnect)
	c.Connect(addr, name, codec)
	waitFor(t, name+" to connect", func() bool {
		p, ok := c.Self()
		return c.State() == StateConnected && ok && p.Name == name
	})
	return c
}

func TestClientsSeeEachOther(t *testing.T) {
	addr := startRelay(t)
	ann := connected(t, addr, "ann", messages.JSON)
	bo := connected(t, addr, "bo", messages.Msgpack)

	annSelf, _ := ann.Self()
	waitFor(t, "bo to see ann", func() bool {
		r := bo.Roster()
		return len(r) == 1 && r[0].ID == annSelf.ID && r[0].Name == "ann"
	})
	waitFor(t, "ann to see bo", func() bool {
		r := ann.Roster()
		return len(r) == 1 && r[0].Name == "bo"
	})

	if err := ann.SendPosition(40, 50); err != nil {
		t.Fatalf("SendPosition: %v", err)
	}
	waitFor(t, "position", func() bool {
		r := bo.Roster()
		return len(r) == 1 && r[0].Pos == [2]float64{40, 50}
	})

	if err := ann.SendChat("hi there"); err != nil {
		t.Fatalf("SendChat: %v", err)
	}
	waitFor(t, "chat", func() bool {
		r := bo.Roster()
		return len(r) == 1 && r[0].ChatMessage == "hi there"
	})
	waitFor(t, "own chat", func() bool {
		p, _ := ann.Self()
		return p.ChatMessage == "hi there"
	})

	ann.Disconnect()
	if ann.State() != StateDisconnected {
		t.Fatalf("state = %v after Disconnect", ann.State())
	}
	waitFor(t, "ann to leave", func() bool { return len(bo.Roster()) == 0 })
}

func TestRelayShutdownStopsWriter(t *testing.T) {
	addr, stop := startStoppableRelay(t)
	c := connected(t, addr, "ann", messages.JSON)

	c.mu.RLock()
	s := c.session
	c.mu.RUnlock()

	stop()
	waitFor(t, "connection to drop", func() bool { return c.State() != StateConnected })

	select {
	case <-s.writerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("write pump still running after the relay closed the connection")
	}
	if err := c.SendPosition(1, 2); err != ErrNotConnected {
		t.Fatalf("SendPosition after drop: err = %v, want ErrNotConnected", err)
	}
}

func TestSendWhileDisconnected(t *testing.T) {
	c := NewClient()
	if err := c.SendPosition(1, 2); err != ErrNotConnected {
		t.Fatalf("err = %v, want ErrNotConnected", err)
	}
}

func TestConnectFailure(t *testing.T) {
	addr := startRelay(t)
	c := NewClient()
	defer c.Disconnect()
	c.Connect(addr+"/nope", "ann", messages.JSON)
	waitFor(t, "error state", func() bool { return c.State() == StateError })
	if c.LastError() == nil {
		t.Fatal("LastError is nil")
	}
}

func TestRelayURL(t *testing.T) {
	tests := []struct {
		address string
		codec   messages.Codec
		want    string
		wantErr bool
	}{
		{"localhost:7373", messages.JSON, "ws://localhost:7373/ws?codec=json", false},
		{"ws://example.com/ws", messages.Msgpack, "ws://example.com/ws?codec=msgpack", false},
		{"https://example.com", messages.JSON, "wss://example.com/ws?codec=json", false},
		{"  10.0.0.2:9000 ", messages.JSON, "ws://10.0.0.2:9000/ws?codec=json", false},
		{"", messages.JSON, "", true},
		{"ftp://example.com", messages.JSON, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			got, err := RelayURL(tt.address, tt.codec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("RelayURL(%q) = %q, want error", tt.address, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("RelayURL(%q): %v", tt.address, err)
			}
			if got != tt.want {
				t.Errorf("RelayURL(%q) = %q, want %q", tt.address, got, tt.want)
			}
		})
	}
}

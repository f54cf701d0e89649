package relay

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"net/url"

	"github.com/automoto/pixelrun/shared/messages"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // Non-browser clients don't send Origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

func extractIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// SetupRoutes serves the websocket endpoint, a health check and, when
// staticDir is set, static files.
func SetupRoutes(hub *Hub, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", ServeWS(hub))
	mux.HandleFunc("GET /health", Health(hub))

	if staticDir != "" {
		fs := http.FileServer(http.Dir(staticDir))
		mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache")
			fs.ServeHTTP(w, r)
		}))
	}
	return mux
}

// ServeWS upgrades the request and registers the connection. ?codec=msgpack
// switches the connection to binary frames.
func ServeWS(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codec, err := messages.CodecByName(r.URL.Query().Get("codec"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[relay] upgrade error: %v", err)
			return
		}

		c := newConn(hub, ws, codec, extractIP(r))
		select {
		case hub.register <- c:
		case <-hub.done:
			ws.Close()
			return
		}

		go c.writePump()
		go c.readPump()
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}

func Health(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(healthResponse{Status: "ok", Players: hub.PlayerCount()}); err != nil {
			log.Printf("[relay] health encode error: %v", err)
		}
	}
}

package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket accepts cross-origin upgrades only in development, where the
// page may be served by a separate dev server.
func NewWebSocket() (*WebSocket, error) {
	upgrader := websocket.Upgrader{}
	if Development() {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}

	ws := &WebSocket{
		Upgrader: upgrader,
	}

	return ws, nil
}

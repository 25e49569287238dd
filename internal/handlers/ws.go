package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/command"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/session"
)

// ConnectWS plays a session over a websocket. Each text message holds one or
// more command lines and is answered with the resulting view. A bad command
// is answered with an error object and the connection stays open.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	id, ok := g.authorize(w, r)
	if !ok {
		return
	}
	if _, err := g.store.Get(id); err != nil {
		g.cookies.Clear(w)
		sendError(w, g.logger, http.StatusNotFound, err)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", slog.Any("error", err))
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("unable to read message", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(
				websocket.CloseUnsupportedData, "text messages only",
			))
			return
		}

		var reply any
		err = g.store.Do(id, func(ctl *controller.Controller) error {
			if err := command.Run(ctl, string(message), g.obs); err != nil {
				return err
			}
			reply = ctl.View()
			return nil
		})
		if err != nil {
			g.logger.Debug("rejected command", slog.String("id", id), slog.Any("error", err))
			reply = wrapError(err)
		}

		if err := c.WriteJSON(reply); err != nil {
			g.logger.Error("unable to write message", slog.Any("error", err))
			return
		}
		if errors.Is(err, session.ErrNotFound) {
			return
		}
	}
}

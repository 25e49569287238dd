package app

import (
	"net/http"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/handlers"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/web"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.store, a.cookies, a.ws, a.metrics,
	)

	a.router.Handle("GET /", web.Handler())
	a.router.HandleFunc("GET /status", handlers.Status)
	a.router.Handle("GET /metrics", a.metrics.Handler())

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)
}

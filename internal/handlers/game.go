package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/command"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/config"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/middleware"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/mines"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/session"
)

var ErrForeignSession = errors.New("session belongs to another client")

type GameHandler struct {
	logger  *slog.Logger
	store   *session.Store
	cookies *config.Cookies
	ws      *config.WebSocket
	obs     command.Observer
	newRand func() *rand.Rand
}

// NewGameHandler serves game sessions kept in store. obs, if not nil, sees
// every applied command.
func NewGameHandler(
	logger *slog.Logger,
	store *session.Store,
	cookies *config.Cookies,
	ws *config.WebSocket,
	obs command.Observer,
) *GameHandler {
	handler := &GameHandler{
		logger:  logger,
		store:   store,
		cookies: cookies,
		ws:      ws,
		obs:     obs,
		newRand: mines.NewRand,
	}

	return handler
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}
	c, err := dto.Command()
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	ctl := controller.New(g.newRand())
	if _, err := command.Exec(ctl, c, g.obs); err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, err := g.store.Create(ctl)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", slog.Any("error", err))
		return
	}

	if err := g.cookies.Refresh(w, s.ID); err != nil {
		g.store.Delete(s.ID)
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to set session cookie", slog.Any("error", err))
		return
	}

	g.logger.Debug(
		"created game session",
		slog.String("id", s.ID),
		slog.String("command", c.String()),
	)

	sendJSONOrLog(w, g.logger, GameSessionDTO{
		GameSessionId: s.ID,
		CreatedAt:     s.CreatedAt.UnixMilli(),
		View:          ctl.View(),
	})
}

// authorize checks that the request carries a token for the session in the
// path and returns its id.
func (g GameHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	claims, ok := middleware.SessionClaims(r)
	if !ok || claims.SessionId != id {
		sendError(w, g.logger, http.StatusUnauthorized, ErrForeignSession)
		return "", false
	}
	return id, true
}

// do runs fn on the session's controller and maps store errors to statuses.
func (g GameHandler) do(
	w http.ResponseWriter,
	id string,
	fn func(*controller.Controller) error,
) bool {
	err := g.store.Do(id, fn)
	if errors.Is(err, session.ErrNotFound) {
		g.cookies.Clear(w)
		sendError(w, g.logger, http.StatusNotFound, err)
		return false
	}
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	id, ok := g.authorize(w, r)
	if !ok {
		return
	}

	var view controller.View
	if !g.do(w, id, func(ctl *controller.Controller) error {
		view = ctl.View()
		return nil
	}) {
		return
	}

	sendJSONOrLog(w, g.logger, view)
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	id, ok := g.authorize(w, r)
	if !ok {
		return
	}

	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}
	c, err := dto.Command()
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	var result MoveResultDTO
	if !g.do(w, id, func(ctl *controller.Controller) error {
		accepted, err := command.Exec(ctl, c, g.obs)
		if err != nil {
			return err
		}
		result = MoveResultDTO{Accepted: accepted, View: ctl.View()}
		return nil
	}) {
		return
	}

	sendJSONOrLog(w, g.logger, result)
}

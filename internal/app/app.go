package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/config"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/metrics"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/middleware"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/session"
)

const shutdownTimeout = time.Second * 15

type App struct {
	logger  *slog.Logger
	router  *http.ServeMux
	store   *session.Store
	cookies *config.Cookies
	ws      *config.WebSocket
	metrics *metrics.Recorder
}

// New reads the environment and wires the server together.
func New(logger *slog.Logger) (*App, error) {
	ttl, err := config.SessionTTL()
	if err != nil {
		return nil, err
	}

	jwt, err := config.NewJWT()
	if err != nil {
		return nil, fmt.Errorf("failed to read jwt config: %w", err)
	}

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return nil, fmt.Errorf("failed to read cookies config: %w", err)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, fmt.Errorf("failed to read ws config: %w", err)
	}

	app := &App{
		logger:  logger,
		router:  http.NewServeMux(),
		store:   session.NewStore(ttl),
		cookies: cookies,
		ws:      ws,
		metrics: metrics.New(),
	}
	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Session(a.logger, a.cookies),
		middleware.Metrics(a.metrics),
		middleware.Cors(config.CorsOrigins()),
		middleware.Logging(a.logger),
	)
}

// sweep drops idle sessions until ctx is done.
func (a *App) sweep(ctx context.Context) error {
	interval := max(a.store.TTL()/4, time.Second)
	return a.store.Run(ctx, interval, func(n int) {
		if n > 0 {
			a.logger.Debug("swept idle sessions", slog.Int("count", n))
		}
		a.metrics.Sessions.Set(float64(a.store.Len()))
	})
}

// Serve runs the server on l together with the session sweeper. It returns
// once ctx is done and the server has shut down, or when either fails.
func (a *App) Serve(ctx context.Context, l net.Listener) error {
	server := &http.Server{
		Handler:     a.Handler(),
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := server.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.sweep(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}

// Start listens on addr, as returned by [config.Port] or [config.PortAddr].
func (a *App) Start(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	a.logger.Info(fmt.Sprintf("minesweeper server listening at http://localhost%s", addr))

	return a.Serve(ctx, l)
}

package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/command"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/mines"
)

type Recorder struct {
	registry *prometheus.Registry

	GamesStarted  prometheus.Counter
	GamesFinished *prometheus.CounterVec
	Moves         *prometheus.CounterVec
	Sessions      prometheus.Gauge
	Requests      *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "minesweeper_games_started_total",
			Help: "Boards dealt, including restarts",
		}),
		GamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minesweeper_games_finished_total",
				Help: "Finished games by outcome",
			},
			[]string{"outcome"},
		),
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minesweeper_moves_total",
				Help: "Commands applied to a game",
			},
			[]string{"op", "accepted"},
		),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "minesweeper_sessions",
			Help: "Live game sessions",
		}),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Handled HTTP requests",
			},
			[]string{"method", "code"},
		),
	}
	r.registry.MustRegister(
		r.GamesStarted,
		r.GamesFinished,
		r.Moves,
		r.Sessions,
		r.Requests,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func outcome(s mines.Status) string {
	if s.Exploded {
		return "lost"
	}
	return "won"
}

// [Recorder] implements [command.Observer]
func (r *Recorder) Observe(c command.Command, accepted bool, before, after mines.Status) {
	r.Moves.WithLabelValues(string(c.Op), strconv.FormatBool(accepted)).Inc()
	if c.Starts() {
		if accepted {
			r.GamesStarted.Inc()
		}
		return
	}
	if !before.Done && after.Done {
		r.GamesFinished.WithLabelValues(outcome(after)).Inc()
	}
}

func (r *Recorder) Request(method string, code int) {
	r.Requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

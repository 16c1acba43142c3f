// Package metrics exports game and session counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tomz197/orbrunner/internal/loop"
)

// Recorder holds the metrics of one registry. It implements loop.Observer.
// Labels are bounded; nothing is labelled per user or per session.
type Recorder struct {
	registry *prometheus.Registry

	gamesStarted       prometheus.Counter
	gamesOver          prometheus.Counter
	finalScore         prometheus.Histogram
	finalLevel         prometheus.Histogram
	gameFrames         prometheus.Histogram
	sessionsActive     prometheus.Gauge
	sessionsTotal      prometheus.Counter
	connectionRejected *prometheus.CounterVec
}

var _ loop.Observer = (*Recorder)(nil)

// NewRecorder registers all metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		gamesStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "orbrunner_games_started_total",
			Help: "Games started, including retries",
		}),
		gamesOver: f.NewCounter(prometheus.CounterOpts{
			Name: "orbrunner_games_over_total",
			Help: "Games that ended with all lives lost",
		}),
		finalScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "orbrunner_final_score",
			Help:    "Score at game over",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		}),
		finalLevel: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "orbrunner_final_level",
			Help:    "Level reached at game over",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		}),
		gameFrames: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "orbrunner_game_frames",
			Help:    "Simulation frames per game",
			Buckets: prometheus.ExponentialBuckets(600, 2, 8),
		}),
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "orbrunner_sessions_active",
			Help: "Currently connected SSH sessions",
		}),
		sessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "orbrunner_sessions_total",
			Help: "SSH sessions accepted",
		}),
		connectionRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "orbrunner_connection_rejected_total",
			Help: "Sessions refused before the game started",
		}, []string{"reason"}), // Bounded: "rate_limit", "capacity", "no_pty"
	}
}

// GameStarted implements loop.Observer.
func (r *Recorder) GameStarted() {
	r.gamesStarted.Inc()
}

// GameOver implements loop.Observer.
func (r *Recorder) GameOver(score, level, frames int) {
	r.gamesOver.Inc()
	r.finalScore.Observe(float64(score))
	r.finalLevel.Observe(float64(level))
	r.gameFrames.Observe(float64(frames))
}

func (r *Recorder) SessionStarted() {
	r.sessionsTotal.Inc()
	r.sessionsActive.Inc()
}

func (r *Recorder) SessionEnded() {
	r.sessionsActive.Dec()
}

// ConnectionRejected counts a refused session by reason.
func (r *Recorder) ConnectionRejected(reason string) {
	r.connectionRejected.WithLabelValues(reason).Inc()
}

// Handler serves the registry, plus Go runtime metrics, for scraping.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(prometheus.Gatherers{r.registry, prometheus.DefaultGatherer}, promhttp.HandlerOpts{})
}

package main

import (
	"github.com/myrjola/findmoney/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

type metrics struct {
	registry     *prometheus.Registry
	gamesStarted prometheus.Counter
	exploreSteps *prometheus.CounterVec
}

// newMetrics registers the game metrics on a registry of their own so that every server instance starts
// counting from zero.
func newMetrics(games *session.Store) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct // optional fields
			Name: "findmoney_games_started_total",
			Help: "Number of games started.",
		}),
		exploreSteps: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct // optional fields
			Name: "findmoney_explore_steps_total",
			Help: "Number of state machine steps run, by action.",
		}, []string{"action"}),
	}
	m.registry.MustRegister(
		m.gamesStarted,
		m.exploreSteps,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{ //nolint:exhaustruct // optional fields
			Name: "findmoney_games_active",
			Help: "Number of games held in memory.",
		}, func() float64 {
			return float64(games.Len())
		}),
		collectors.NewGoCollector(),
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}) //nolint:exhaustruct // defaults
}

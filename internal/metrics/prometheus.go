package metrics

import (
	"net/http"
	"strconv"

	"github.com/Iron-Ham/scoreboard/internal/scoreboard"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus counters.
type PrometheusRecorder struct {
	activations *prom.CounterVec
	resets      prom.Counter
}

// NewPrometheusRecorder constructs the scoreboard counters and registers
// them with reg. A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		activations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "scoreboard",
			Name:      "activations_total",
			Help:      "Increment control activations by team and value",
		}, []string{"team", "increment"}),
		resets: prom.NewCounter(prom.CounterOpts{
			Namespace: "scoreboard",
			Name:      "resets_total",
			Help:      "Number of times both scores were reset",
		}),
	}
	reg.MustRegister(pr.activations, pr.resets)

	return pr
}

func (p *PrometheusRecorder) IncActivation(team string, increment int) {
	if p == nil {
		return
	}
	p.activations.WithLabelValues(team, strconv.Itoa(increment)).Inc()
}

func (p *PrometheusRecorder) IncReset() {
	if p == nil {
		return
	}
	p.resets.Inc()
}

// ScoreSource reports the live score for a team.
type ScoreSource interface {
	Score(team scoreboard.Team) int
}

// RegisterScoreGauges registers one scoreboard_score gauge per team that
// reads src at scrape time, so the exported value is always the board's
// current score regardless of event delivery order.
func RegisterScoreGauges(reg prom.Registerer, src ScoreSource) error {
	for _, team := range scoreboard.Teams() {
		gauge := prom.NewGaugeFunc(prom.GaugeOpts{
			Namespace:   "scoreboard",
			Name:        "score",
			Help:        "Current score by team",
			ConstLabels: prom.Labels{"team": string(team)},
		}, func() float64 {
			return float64(src.Score(team))
		})
		if err := reg.Register(gauge); err != nil {
			return err
		}
	}
	return nil
}

// HTTPHandler returns an http.Handler that serves the metrics in reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

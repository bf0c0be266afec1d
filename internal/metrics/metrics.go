package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventboard_upstream_fetches_total",
		Help: "Upstream event collection fetches by outcome.",
	}, []string{"outcome"})

	BoardRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventboard_board_renders_total",
		Help: "Board pages rendered.",
	})
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

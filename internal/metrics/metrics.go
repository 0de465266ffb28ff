package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pongking_match_submissions_total",
		Help: "Match results accepted into the ledger.",
	})

	ScoutingFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pongking_scouting_fallbacks_total",
		Help: "Style annotations that degraded to fallback text.",
	})

	LiveSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pongking_live_subscribers",
		Help: "Websocket clients currently receiving snapshots.",
	})
)

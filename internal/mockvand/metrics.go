package mockvand

//
// Metrics definitions
//

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsSummaryObjectives returns the summary objectives for promauto.NewSummary.
func metricsSummaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.25: 0.010, // 0.240 <= φ <= 0.260
		0.5:  0.010, // 0.490 <= φ <= 0.510
		0.75: 0.010, // 0.740 <= φ <= 0.760
		0.9:  0.010, // 0.899 <= φ <= 0.901
		0.99: 0.001, // 0.989 <= φ <= 0.991
	}
}

var (
	// metricRequestsCount counts the number of requests we served.
	metricRequestsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mockvand_requests_count",
		Help: "Total number of processed requests",
	}, []string{"code", "method"})

	// metricRequestsInflight gauges the number of requests currently inflight.
	metricRequestsInflight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mockvand_requests_inflight_gauge",
		Help: "The number of requests currently inflight",
	})

	// metricRequestDurationSeconds summarizes the time to serve a request.
	metricRequestDurationSeconds = promauto.NewSummary(prometheus.SummaryOpts{
		Name:       "mockvand_request_duration_seconds",
		Help:       "Summarizes the time to serve a request (in seconds)",
		Objectives: metricsSummaryObjectives(),
	})
)

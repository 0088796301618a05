package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	servedVariates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "randx_served_variates",
			Help: "Number of variates returned to clients.",
		},
		[]string{"distribution"},
	)
	rejectedRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "randx_rejected_requests",
			Help: "Number of sample requests rejected (unknown distribution or bad arguments).",
		},
		[]string{"distribution"},
	)
	serverCollectors = []prometheus.Collector{
		servedVariates,
		rejectedRequests,
	}

	metricsOnce sync.Once
)

// unknownLabel keeps the label set bounded for names that were not found.
const unknownLabel = "unknown"

func initMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(serverCollectors...)
	})
}

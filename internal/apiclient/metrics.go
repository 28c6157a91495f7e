package apiclient

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

var (
	fetchCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "api",
		Name:      "fetches_total",
		Help:      "Collection fetches, labeled by endpoint and outcome (ok, transport, status, decode).",
	}, []string{"endpoint", "outcome"})

	fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit",
		Subsystem: "api",
		Name:      "fetch_duration_seconds",
		Help:      "Time from request start to a normalized collection or failure.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(fetchCounter, fetchDuration)
}

func observeFetch(endpoint string, err error, elapsed time.Duration) {
	fetchCounter.WithLabelValues(endpoint, outcome(err)).Inc()
	fetchDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, types.ErrStatus):
		return "status"
	case errors.Is(err, types.ErrDecode):
		return "decode"
	default:
		return "transport"
	}
}

package web

import "github.com/prometheus/client_golang/prometheus"

var pageCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "octofit",
	Subsystem: "web",
	Name:      "pages_total",
	Help:      "View pages served, labeled by view and the phase the page ended in.",
}, []string{"view", "phase"})

func init() {
	prometheus.MustRegister(pageCounter)
}

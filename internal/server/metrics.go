package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exportAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rasid_export_attempts_total",
		Help: "Number of PDF export attempts.",
	})
	exportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rasid_export_failures_total",
		Help: "Number of failed PDF exports by reason.",
	}, []string{"reason"})
)

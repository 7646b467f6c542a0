package extraction

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractionAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "firagent",
		Subsystem: "extraction",
		Name:      "attempts_total",
		Help:      "Language model calls made by the extraction pipeline, by outcome",
	}, []string{"outcome"})

	extractionResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "firagent",
		Subsystem: "extraction",
		Name:      "results_total",
		Help:      "Extraction requests, by final result",
	}, []string{"result"})

	extractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "firagent",
		Subsystem: "extraction",
		Name:      "duration_seconds",
		Help:      "Time spent on one extraction request, retries included",
		Buckets:   []float64{0.5, 1, 2, 4, 8, 16, 32},
	})
)

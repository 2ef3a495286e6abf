package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webgen_generation_requests_total",
		Help: "Website generation requests by endpoint and outcome.",
	}, []string{"endpoint", "status"})

	parseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "webgen_parse_failures_total",
		Help: "LLM responses from which no files could be parsed.",
	})

	generatedFiles = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "webgen_generated_files",
		Help:    "Number of files parsed per successful generation.",
		Buckets: []float64{1, 3, 8, 10, 20, 24, 30},
	})
)

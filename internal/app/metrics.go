package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes recorded in the outcome label.
const (
	OutcomeSuccess            = "success"
	OutcomeValidation         = "validation"
	OutcomeRateLimited        = "rate_limited"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeAPIError           = "api_error"
	OutcomeTransport          = "transport"
	OutcomeMapping            = "mapping"
	OutcomeCanceled           = "canceled"
	OutcomeError              = "error"
)

var (
	clientCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fdc_client_calls_total",
			Help: "FoodData Central calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	clientAdvisories = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fdc_client_advisories_total",
			Help: "Non-fatal parameter advisories by field",
		},
		[]string{"field"},
	)

	clientCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fdc_client_call_duration_seconds",
			Help:    "FoodData Central call latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)
)

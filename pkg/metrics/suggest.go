package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the ai-suggest HTTP handler
	SuggestLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "suggest_latency_seconds",
		Help:    "Latency of gift suggestion handler",
		Buckets: prometheus.DefBuckets,
	})

	// Suggest requests by outcome: ok, invalid, error
	SuggestRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "suggest_requests_total",
		Help: "Total number of gift suggestion requests",
	}, []string{"outcome"})

	SuggestResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "suggest_results",
		Help:    "Number of deals returned per suggestion",
		Buckets: []float64{0, 1, 2, 3, 5, 10, 15, 20, 25},
	})
)

func Init() {
	prometheus.MustRegister(
		SuggestLatency,
		SuggestRequests,
		SuggestResults,
	)
}

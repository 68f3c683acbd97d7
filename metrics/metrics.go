package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the hasher metrics and the go process collectors
	Registry = prometheus.NewRegistry()

	// APICallCounter how many api commands were served
	APICallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "curlp_api_call_counter",
		Help: "Number of API commands that we have received",
	}, []string{"command"})
	// DigestCounter how many digests were computed, per sponge variant
	DigestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "curlp_digests_total",
		Help: "Number of digests computed",
	}, []string{"variant"})
	// CacheCounter digest cache lookups by result
	CacheCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "curlp_cache_lookups_total",
		Help: "Digest cache lookups",
	}, []string{"result"})
	// NonceSearchDuration how long nonce searches take
	NonceSearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "curlp_nonce_search_duration_seconds",
		Help:    "Histogram of nonce search durations",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	Registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		APICallCounter,
		DigestCounter,
		CacheCounter,
		NonceSearchDuration,
	)
}

// Handler serves the registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jamoro_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jamoro_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jamoro_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Engine metrics.
var (
	RomanizeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jamoro_romanize_requests_total",
		Help: "Romanization requests by result",
	}, []string{"result"})

	RuleMatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jamoro_rule_matches_total",
		Help: "Phonological rule matches by rule name",
	}, []string{"rule"})
)

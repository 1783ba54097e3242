package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxpad_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boxpad_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	ChatListRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boxpad_chat_list_refreshes_total",
			Help: "Total background refreshes of the chat list",
		},
	)

	ChatSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boxpad_chat_searches_total",
			Help: "Total chat list search queries",
		},
	)

	UpstreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxpad_upstream_failures_total",
			Help: "Total upstream fetch failures",
		},
		[]string{"op"},
	)
)

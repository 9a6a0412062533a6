// Package metrics exposes Prometheus instrumentation for the HTTP layer.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	upstreamErrors  *prometheus.CounterVec
}

// New registers the service collectors on the given registerer and returns
// them. Pass prometheus.DefaultRegisterer for normal operation.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "topic_search",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed, by method, route, and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "topic_search",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "topic_search",
			Name:      "upstream_fetch_errors_total",
			Help:      "Failed upstream content fetches, by endpoint.",
		}, []string{"endpoint"}),
	}
}

// Middleware records request counts and latencies. The route label uses the
// matched route template rather than the raw path to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.requestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// UpstreamError increments the upstream fetch error counter for an endpoint.
func (m *Metrics) UpstreamError(endpoint string) {
	m.upstreamErrors.WithLabelValues(endpoint).Inc()
}

// Handler returns the /metrics HTTP handler wrapped for Gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopscale",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})

	httpLatencyMS = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shopscale",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpLatencyMS)
}

// Metrics records request counts and latency per route template.
func Metrics(c *gin.Context) {
	start := time.Now()
	c.Next()

	handler := c.FullPath()
	if handler == "" {
		handler = "unmatched"
	}
	httpRequests.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
	httpLatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
}

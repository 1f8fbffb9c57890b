// Package metrics exposes the application-level Prometheus instruments.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the instruments shared across modules.
type Metrics struct {
	HTTPRequests       *prometheus.HistogramVec
	DatatableQueries   *prometheus.CounterVec
	TenantsProvisioned prometheus.Counter
	SessionMismatches  prometheus.Counter
	SchemaCheckouts    *prometheus.CounterVec
}

// New registers the instruments on the default registry.
func New() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "estoque",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		DatatableQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estoque",
			Name:      "datatable_queries_total",
			Help:      "Server-side datatable queries by entity.",
		}, []string{"entity"}),
		TenantsProvisioned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "estoque",
			Name:      "tenants_provisioned_total",
			Help:      "Successfully provisioned tenants.",
		}),
		SessionMismatches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "estoque",
			Name:      "tenant_session_mismatch_total",
			Help:      "Pooled sessions discarded because their tenant disagreed with the resolved tenant.",
		}),
		SchemaCheckouts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estoque",
			Name:      "schema_checkouts_total",
			Help:      "Schema-scoped connection checkouts by outcome.",
		}, []string{"outcome"}),
	}
}

// GinMiddleware records request latency per route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.HTTPRequests.WithLabelValues(
			route,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

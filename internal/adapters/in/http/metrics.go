package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics for monitoring API health and performance
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parceltrack_http_requests_total",
			Help: "Total HTTP requests handled, by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parceltrack_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ordersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parceltrack_orders_created_total",
			Help: "Total shipments registered through the API",
		},
	)

	statusUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parceltrack_status_updates_total",
			Help: "Total lifecycle transitions recorded through the API",
		},
	)
)

// MetricsMiddleware records request counts and latencies per route. The
// route template (not the raw URL) is used as the path label to keep
// cardinality bounded.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			method := ctx.Request().Method

			httpRequestsTotal.WithLabelValues(
				method,
				path,
				strconv.Itoa(ctx.Response().Status),
			).Inc()
			httpRequestDuration.WithLabelValues(method, path).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RegisterMetricsRoute exposes the Prometheus scrape endpoint.
func RegisterMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

package web

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal   *prometheus.CounterVec   //nolint:gochecknoglobals
	requestDuration *prometheus.HistogramVec //nolint:gochecknoglobals
	metricsOnce     sync.Once                //nolint:gochecknoglobals
)

func registerMetrics(service string) {
	metricsOnce.Do(func() {
		labels := prometheus.Labels{"service": service}

		requestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Number of http requests, by method, route and status code.",
				ConstLabels: labels,
			},
			[]string{"method", "route", "code"},
		)

		requestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of http requests, by method and route.",
				ConstLabels: labels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)
	})
}

// metricsMiddleware counts requests by their route pattern, not the raw
// path, so ids don't blow up the label cardinality.
func metricsMiddleware(service string) fiber.Handler {
	registerMetrics(service)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			code = fiber.StatusInternalServerError

			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
		}

		route := c.Route().Path
		if code == fiber.StatusNotFound && route == "/" && c.Path() != "/" {
			route = "unmatched"
		}

		method := c.Method()
		requestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
		requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

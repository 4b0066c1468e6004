package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vybe_redis_errors_total",
		Help: "Total number of failed Redis commands.",
	},
	[]string{"command"},
)

// CheckInsSubmitted counts accepted check-in submissions by event.
var CheckInsSubmitted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vybe_checkins_submitted_total",
		Help: "Total number of check-in submissions accepted.",
	},
	[]string{"event_id"},
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

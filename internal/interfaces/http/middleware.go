package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Finanzas-api/internal/infrastructure/ratelimit"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// AccessLog registra cada petición con método, ruta, status, latencia y request id.
// 5xx se registra como error y 4xx como warn.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// El ErrorHandler escribe la respuesta; así el status registrado es el final.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		level := zerolog.InfoLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= fiber.StatusBadRequest:
			level = zerolog.WarnLevel
		}
		log.WithLevel(level).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return nil
	}
}

var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Metrics contadores e histogramas HTTP expuestos en /metrics.
type Metrics struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	rateLimitHits *prometheus.CounterVec
}

// NewMetrics registra los colectores en reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finanzas",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP procesadas.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "finanzas",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de los handlers HTTP.",
			Buckets:   latencyBuckets,
		}, []string{"method", "route", "status"}),
		rateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finanzas",
			Subsystem: "api",
			Name:      "rate_limit_hits_total",
			Help:      "Peticiones rechazadas por rate limiting.",
		}, []string{"route"}),
	}
	reg.MustRegister(m.requests, m.latency, m.rateLimitHits)
	return m
}

// Middleware mide cada petición por ruta registrada (no por path concreto).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		labels := prometheus.Labels{
			"method": c.Method(),
			"route":  c.Route().Path,
			"status": strconv.Itoa(status),
		}
		m.requests.With(labels).Inc()
		m.latency.With(labels).Observe(time.Since(start).Seconds())
		return err
	}
}

// RateLimit limita peticiones por IP y minuto. limit <= 0 desactiva el límite.
func RateLimit(limiter ratelimit.Limiter, limit int, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil || limit <= 0 {
			return c.Next()
		}
		d := limiter.Allow("ip:"+c.IP(), limit, time.Minute)
		c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining(limit)))
		if !d.WindowEnd.IsZero() {
			c.Set("X-RateLimit-Reset", strconv.FormatInt(d.WindowEnd.Unix(), 10))
		}
		if !d.Allowed {
			if metrics != nil {
				metrics.rateLimitHits.With(prometheus.Labels{"route": c.Path()}).Inc()
			}
			return fail(c, fiber.StatusTooManyRequests, "Too many requests")
		}
		return c.Next()
	}
}

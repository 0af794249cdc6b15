package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Finanzas-api/internal/infrastructure/ratelimit"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// ServerConfig opciones de la aplicación Fiber.
type ServerConfig struct {
	AppName     string
	CORSOrigins string
	Logger      *logger.Logger
	// Registry destino de las métricas; nil crea uno propio.
	Registry *prometheus.Registry
	// Limiter opcional; RateLimitPerMinute <= 0 lo desactiva.
	Limiter            ratelimit.Limiter
	RateLimitPerMinute int
	// Mount se ejecuta antes de registrar la API (p. ej. Swagger UI).
	Mount func(app *fiber.App)
}

// NewApp arma la aplicación: middlewares, /health, /metrics y las rutas /api.
func NewApp(cfg ServerConfig, deps RouterDeps) *fiber.App {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	metrics := NewMetrics(reg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: ErrorHandler(log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	// Orden: el access log ve el status final y métricas ven los pánicos recuperados.
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(AccessLog(log.Component("http")))
	app.Use(metrics.Middleware())
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(RateLimit(cfg.Limiter, cfg.RateLimitPerMinute, metrics))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	if cfg.Mount != nil {
		cfg.Mount(app)
	}
	Router(app, deps)
	return app
}

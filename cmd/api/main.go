package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Finanzas-api/docs"
	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/usecase"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/ratelimit"
	httpRouter "github.com/jhoicas/Finanzas-api/internal/interfaces/http"
	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openStore(ctx, cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer repos.close()

	clock := usecase.Clock(time.Now)
	deps := httpRouter.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(repos.users),
		UserUC:        usecase.NewUserUseCase(repos.users, repos.companies),
		CompanyUC:     usecase.NewCompanyUseCase(repos.companies, repos.cards, repos.transactions, repos.invoices, clock),
		CardUC:        usecase.NewCardUseCase(repos.cards, repos.transactions, repos.invoices, clock),
		InvoiceUC:     usecase.NewInvoiceUseCase(repos.invoices, clock),
		TransactionUC: usecase.NewTransactionUseCase(repos.transactions),
	}

	limiter := newLimiter(ctx, cfg, log)
	if limiter != nil {
		defer limiter.Close()
	}

	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:            cfg.App.Name,
		CORSOrigins:        cfg.HTTP.CORSOrigins,
		Logger:             log,
		Limiter:            limiter,
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
		Mount: func(app *fiber.App) {
			app.Get("/openapi.json", func(c *fiber.Ctx) error {
				doc, err := swag.ReadDoc()
				if err != nil {
					return err
				}
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
				return c.SendString(doc)
			})
			// Swagger UI en local: http://localhost:<port>/docs
			if _, err := os.Stat(swaggerFile); err == nil {
				app.Use(swagger.New(swagger.Config{
					BasePath: "/",
					FilePath: swaggerFile,
					Path:     "docs",
					Title:    "Finanzas API",
				}))
			}
		},
	}, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newLimiter usa Redis si REDIS_ADDR está definido y responde; si no, un limitador en memoria.
// Devuelve nil cuando RATE_LIMIT_PER_MINUTE es 0.
func newLimiter(ctx context.Context, cfg *config.Config, log *logger.Logger) ratelimit.Limiter {
	if cfg.RateLimit.PerMinute <= 0 {
		return nil
	}
	if cfg.Redis.Addr != "" {
		l, err := ratelimit.NewRedis(ctx, cfg.Redis, log.Component("ratelimit"))
		if err == nil {
			log.Info().Str("addr", cfg.Redis.Addr).Int("per_minute", cfg.RateLimit.PerMinute).Msg("rate limiting con Redis")
			return l
		}
		log.Warn().Err(err).Msg("Redis no disponible, rate limiting en memoria")
	}
	return ratelimit.NewMemory()
}

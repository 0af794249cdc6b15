package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/Finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

func main() {
	command := flag.String("command", "up", "comando de migración (up|status|down)")
	timeout := flag.Duration("timeout", time.Minute, "tiempo máximo del comando")
	target := flag.Int64("target", 0, "versión destino para down (opcional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	migrator, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar migraciones")
	}

	switch *command {
	case "up":
		err = migrator.Up(ctx)
	case "status":
		err = migrator.Status(ctx)
	case "down":
		err = migrator.Down(ctx, *target)
	default:
		log.Fatal().Str("command", *command).Msg("comando no soportado")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migración fallida")
	}
	log.Info().Str("command", *command).Msg("migración completada")
}

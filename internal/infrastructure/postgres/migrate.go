package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrator aplica el esquema embebido con goose sobre la misma base que usa el pool.
type Migrator struct {
	dsn string
	log *logger.Logger
}

// NewMigrator construye el runner; dsn es el connection string de PostgreSQL.
func NewMigrator(dsn string, log *logger.Logger) (*Migrator, error) {
	if dsn == "" {
		return nil, errors.New("dsn vacío")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Migrator{dsn: dsn, log: log.Component("migrate")}, nil
}

// Up aplica las migraciones pendientes.
func (m *Migrator) Up(ctx context.Context) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		m.log.Info().Msg("aplicando migraciones")
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		m.log.Info().Msg("migraciones aplicadas")
		return nil
	})
}

// Status imprime el estado de cada migración.
func (m *Migrator) Status(ctx context.Context) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		return nil
	})
}

// Down revierte la última migración, o hasta target si es > 0.
func (m *Migrator) Down(ctx context.Context, target int64) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		if target > 0 {
			m.log.Info().Int64("target", target).Msg("revirtiendo migraciones")
			if err := goose.DownToContext(ctx, db, migrationsDir, target); err != nil {
				return fmt.Errorf("rollback to version %d: %w", target, err)
			}
			return nil
		}
		m.log.Info().Msg("revirtiendo última migración")
		if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("rollback latest migration: %w", err)
		}
		return nil
	})
}

func (m *Migrator) withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{log: m.log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}

	db, err := sql.Open("pgx", m.dsn)
	if err != nil {
		return fmt.Errorf("open sql connection: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping sql connection: %w", err)
	}

	runCtx, cancelRun := context.WithTimeout(ctx, time.Minute)
	defer cancelRun()
	return fn(runCtx, db)
}

// gooseLogger redirige la salida de goose a zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Msgf(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Msgf(format, v...)
}

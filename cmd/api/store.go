package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// repositories adaptadores de persistencia ya construidos sobre un mismo almacén.
type repositories struct {
	users        repository.UserRepository
	companies    repository.CompanyRepository
	cards        repository.CardRepository
	transactions repository.TransactionRepository
	invoices     repository.InvoiceRepository
	close        func()
}

// openStore abre el almacén indicado por STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB conectado")
		return &repositories{
			users:        mongodb.NewUserRepository(db),
			companies:    mongodb.NewCompanyRepository(db),
			cards:        mongodb.NewCardRepository(db),
			transactions: mongodb.NewTransactionRepository(db),
			invoices:     mongodb.NewInvoiceRepository(db),
			close: func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("desconexión de MongoDB")
				}
			},
		}, nil

	case config.DriverPostgres:
		migrator, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
		if err != nil {
			return nil, err
		}
		if err := migrator.Up(ctx); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("PostgreSQL conectado")
		return &repositories{
			users:        postgres.NewUserRepository(pool),
			companies:    postgres.NewCompanyRepository(pool),
			cards:        postgres.NewCardRepository(pool),
			transactions: postgres.NewTransactionRepository(pool),
			invoices:     postgres.NewInvoiceRepository(pool),
			close:        pool.Close,
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &repositories{
			users:        memory.NewUserRepository(s),
			companies:    memory.NewCompanyRepository(s),
			cards:        memory.NewCardRepository(s),
			transactions: memory.NewTransactionRepository(s),
			invoices:     memory.NewInvoiceRepository(s),
			close:        func() {},
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}

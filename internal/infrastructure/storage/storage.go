// Package storage abre el adaptador de persistencia elegido por STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/accounts-api/internal/application/auth"
	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"github.com/jhoicas/accounts-api/internal/infrastructure/memory"
	"github.com/jhoicas/accounts-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/accounts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/accounts-api/pkg/config"
	"github.com/jhoicas/accounts-api/pkg/logger"
)

// Stores repositorios y frontera transaccional de un mismo almacenamiento.
type Stores struct {
	Driver   string
	Accounts repository.AccountRepository
	Users    repository.UserRepository
	Tx       auth.TxRunner
	close    func(context.Context)
}

// Close libera conexiones. Es seguro llamarlo más de una vez.
func (s *Stores) Close(ctx context.Context) {
	if s.close != nil {
		s.close(ctx)
		s.close = nil
	}
}

// Open conecta el almacenamiento configurado. En Postgres aplica las migraciones pendientes
// y en MongoDB crea los índices.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones PostgreSQL aplicadas")
		return &Stores{
			Driver:   config.StoragePostgres,
			Accounts: postgres.NewAccountRepository(pool),
			Users:    postgres.NewUserRepository(pool),
			Tx:       postgres.NewTxRunner(pool),
			close:    func(context.Context) { pool.Close() },
		}, nil

	case config.StorageMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("índices MongoDB listos")
		return &Stores{
			Driver:   config.StorageMongo,
			Accounts: mongodb.NewAccountRepository(db),
			Users:    mongodb.NewUserRepository(db),
			Tx:       mongodb.NewTxRunner(db),
			close: func(ctx context.Context) {
				if err := client.Disconnect(ctx); err != nil {
					log.Error().Err(err).Msg("desconexión MongoDB")
				}
			},
		}, nil

	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return Memory(memory.NewStore()), nil

	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}

// Memory envuelve un store en memoria ya creado.
func Memory(store *memory.Store) *Stores {
	return &Stores{
		Driver:   config.StorageMemory,
		Accounts: store.Accounts(),
		Users:    store.Users(),
		Tx:       memory.NewTxRunner(store),
	}
}

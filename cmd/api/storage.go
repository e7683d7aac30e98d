package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/facturas-local/internal/domain/repository"
	"github.com/jhoicas/facturas-local/internal/infrastructure/localstore"
	"github.com/jhoicas/facturas-local/internal/infrastructure/postgres"
	"github.com/jhoicas/facturas-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/facturas-local/pkg/config"
)

// openSlotStore abre el backend configurado. Ante error devuelve store nil y un
// close no-op, así el almacén de facturas trabaja solo en memoria.
func openSlotStore(ctx context.Context, cfg *config.Config) (repository.SlotStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return localstore.NewMemoryStore(), noop, nil

	case config.StorageFile:
		store, err := localstore.OpenFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case config.StorageSQLite:
		path := cfg.Storage.Path
		if filepath.Ext(path) == "" {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return nil, noop, fmt.Errorf("crear directorio %s: %w", path, err)
			}
			path = filepath.Join(path, "facturas.db")
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { _ = store.Close() }, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store := postgres.NewSlotStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return store, pool.Close, nil
	}
	return nil, noop, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Storage.Driver)
}

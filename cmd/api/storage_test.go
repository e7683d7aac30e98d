package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-local/pkg/config"
)

func storageConfig(driver, path string) *config.Config {
	return &config.Config{Storage: config.StorageConfig{Driver: driver, Path: path, Key: "invoices"}}
}

func TestOpenSlotStore_Drivers(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]*config.Config{
		"memory":            storageConfig(config.StorageMemory, ""),
		"file":              storageConfig(config.StorageFile, filepath.Join(dir, "slots")),
		"sqlite directorio": storageConfig(config.StorageSQLite, filepath.Join(dir, "db")),
		"sqlite archivo":    storageConfig(config.StorageSQLite, filepath.Join(dir, "propio.db")),
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			store, closeFn, err := openSlotStore(context.Background(), cfg)
			require.NoError(t, err)
			defer closeFn()

			require.NoError(t, store.Set("invoices", `[]`))
			raw, found, err := store.Get("invoices")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `[]`, raw)
		})
	}
}

func TestOpenSlotStore_DriverDesconocido(t *testing.T) {
	store, closeFn, err := openSlotStore(context.Background(), storageConfig("indexeddb", ""))
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.NotPanics(t, closeFn)
}

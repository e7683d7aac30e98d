// Package sqlite implementa el almacenamiento local de slots sobre un único
// archivo SQLite (driver puro Go, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/facturas-local/internal/domain"
	"github.com/jhoicas/facturas-local/internal/domain/repository"
)

var _ repository.SlotStore = (*SlotStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS local_slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`

// SlotStore SlotStore respaldado por SQLite.
type SlotStore struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y asegura el esquema.
func Open(path string) (*SlotStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ruta de la base sqlite requerida")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Un solo escritor; evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return &SlotStore{db: db}, nil
}

// Close libera la conexión.
func (s *SlotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get lee el slot; found=false si no existe la fila.
func (s *SlotStore) Get(key string) (string, bool, error) {
	var raw string
	err := s.db.QueryRowContext(context.Background(),
		`SELECT value FROM local_slots WHERE key = ?`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: leer slot %s: %v", domain.ErrSlotUnavailable, key, err)
	}
	return raw, true, nil
}

// Set inserta o reemplaza el contenido completo del slot.
func (s *SlotStore) Set(key, raw string) error {
	_, err := s.db.ExecContext(context.Background(), `
INSERT INTO local_slots (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, raw, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: escribir slot %s: %v", domain.ErrSlotUnavailable, key, err)
	}
	return nil
}

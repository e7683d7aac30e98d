package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/facturas-local/internal/domain"
	"github.com/jhoicas/facturas-local/internal/domain/repository"
)

var _ repository.SlotStore = (*SlotStore)(nil)

const slotSchema = `
	CREATE TABLE IF NOT EXISTS local_slots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// SlotStore implementación de SlotStore sobre PostgreSQL (usable con pool o tx).
type SlotStore struct {
	q Querier
}

// NewSlotStore construye el adaptador. Pasar pool o tx (Querier).
func NewSlotStore(q Querier) *SlotStore {
	return &SlotStore{q: q}
}

// EnsureSchema crea la tabla local_slots si no existe.
func (s *SlotStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, slotSchema); err != nil {
		return fmt.Errorf("crear tabla local_slots: %w", err)
	}
	return nil
}

// Get obtiene el contenido del slot.
func (s *SlotStore) Get(key string) (string, bool, error) {
	var raw string
	err := s.q.QueryRow(context.Background(),
		`SELECT value FROM local_slots WHERE key = $1`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: get slot %s: %v", domain.ErrSlotUnavailable, key, err)
	}
	return raw, true, nil
}

// Set inserta o reemplaza el slot completo.
func (s *SlotStore) Set(key, raw string) error {
	query := `
		INSERT INTO local_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(context.Background(), query, key, raw); err != nil {
		return fmt.Errorf("%w: upsert slot %s: %v", domain.ErrSlotUnavailable, key, err)
	}
	return nil
}

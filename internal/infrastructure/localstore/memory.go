package localstore

import (
	"sync"

	"github.com/jhoicas/facturas-local/internal/domain/repository"
)

var _ repository.SlotStore = (*MemoryStore)(nil)

// MemoryStore SlotStore en memoria del proceso. No sobrevive al reinicio.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryStore construye un almacenamiento vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

// Get devuelve el contenido del slot.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.slots[key]
	return raw, ok, nil
}

// Set sobrescribe el slot.
func (s *MemoryStore) Set(key, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = raw
	return nil
}

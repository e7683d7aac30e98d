// Package localstore enlaza valores en memoria con slots de un almacenamiento
// local clave/valor y provee backends en memoria y en disco.
//
// Un Cell se lee una sola vez al construirse y escribe el slot completo en cada
// cambio. Ningún fallo del almacenamiento se propaga al llamador: se registra en
// el log y el valor en memoria sigue siendo la fuente de verdad de la sesión.
package localstore

import (
	"encoding/json"
	"sync"

	"github.com/jhoicas/facturas-local/internal/domain/repository"
	"github.com/jhoicas/facturas-local/pkg/logger"
)

// Cell valor tipado ligado a un slot. Seguro para uso concurrente.
type Cell[T any] struct {
	mu    sync.Mutex
	store repository.SlotStore
	key   string
	value T
	log   *logger.Logger
}

// NewCell lee el slot key de store. Si el slot no existe, el contenido es inválido
// o store es nil/no disponible, el valor inicial es def y no se escribe nada.
func NewCell[T any](store repository.SlotStore, key string, def T, log *logger.Logger) *Cell[T] {
	if log == nil {
		log = logger.Nop()
	}
	c := &Cell[T]{store: store, key: key, value: def, log: log}
	if store == nil {
		log.Debug().Str("key", key).Msg("sin almacenamiento local; valor solo en memoria")
		return c
	}

	raw, found, err := store.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("leer slot local")
		return c
	}
	if !found {
		return c
	}

	var parsed T
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("slot local corrupto, se usa el valor por defecto")
		return c
	}
	c.value = parsed
	return c
}

// Key nombre del slot.
func (c *Cell[T]) Key() string { return c.key }

// Get devuelve el valor actual en memoria.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set reemplaza el valor y lo persiste.
func (c *Cell[T]) Set(v T) {
	c.Update(func(T) (T, bool) { return v, true })
}

// Update calcula el nuevo valor a partir del último valor en memoria, bajo el
// mismo lock, y lo persiste. Si fn devuelve changed=false no se modifica nada.
// Devuelve changed.
func (c *Cell[T]) Update(fn func(current T) (next T, changed bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, changed := fn(c.value)
	if !changed {
		return false
	}
	c.value = next
	c.persist()
	return true
}

// persist escribe el valor completo en el slot. Requiere c.mu tomado.
func (c *Cell[T]) persist() {
	if c.store == nil {
		return
	}
	raw, err := json.Marshal(c.value)
	if err != nil {
		c.log.Error().Err(err).Str("key", c.key).Msg("serializar valor del slot")
		return
	}
	if err := c.store.Set(c.key, string(raw)); err != nil {
		c.log.Error().Err(err).Str("key", c.key).Msg("escribir slot local")
	}
}

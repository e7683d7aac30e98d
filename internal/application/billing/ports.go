package billing

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator genera identificadores únicos (probabilidad de colisión despreciable).
type IDGenerator interface {
	NewID() string
}

// Clock fuente de la hora actual; solo se usa para numerar facturas.
type Clock interface {
	Now() time.Time
}

// UUIDGenerator IDGenerator basado en UUID v4.
type UUIDGenerator struct{}

// NewID devuelve un UUID v4 en texto.
func (UUIDGenerator) NewID() string { return uuid.New().String() }

// SystemClock Clock del sistema.
type SystemClock struct{}

// Now devuelve time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// IDFunc adapta una función a IDGenerator.
type IDFunc func() string

// NewID llama a f.
func (f IDFunc) NewID() string { return f() }

// ClockFunc adapta una función a Clock.
type ClockFunc func() time.Time

// Now llama a f.
func (f ClockFunc) Now() time.Time { return f() }

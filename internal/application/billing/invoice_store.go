package billing

import (
	"fmt"

	"github.com/jhoicas/facturas-local/internal/domain"
	"github.com/jhoicas/facturas-local/internal/domain/entity"
	"github.com/jhoicas/facturas-local/internal/domain/repository"
	"github.com/jhoicas/facturas-local/internal/infrastructure/localstore"
	"github.com/jhoicas/facturas-local/pkg/logger"
)

// DefaultSlotKey nombre del slot donde vive la colección de facturas.
const DefaultSlotKey = "invoices"

// maxIDAttempts intentos con el IDGenerator inyectado antes de recurrir a UUID.
const maxIDAttempts = 8

// InvoiceStoreConfig dependencias opcionales del almacén; los campos vacíos toman valores por defecto.
type InvoiceStoreConfig struct {
	Key   string      // DefaultSlotKey si está vacío
	IDs   IDGenerator // UUIDGenerator si es nil
	Clock Clock       // SystemClock si es nil
	Log   *logger.Logger
}

// InvoiceStore fuente única de verdad de las facturas durante la sesión.
//
// Mantiene la colección en memoria y la persiste completa en un slot local tras
// cada cambio. Cada mutación se calcula sobre el último valor bajo el lock del
// Cell, así que operaciones consecutivas siempre ven el resultado de la anterior.
// Las colecciones se reemplazan (copy-on-write) y los consumidores solo reciben copias.
//
// Debe construirse con NewInvoiceStore; usar el valor cero es un error de programación.
type InvoiceStore struct {
	cell  *localstore.Cell[[]entity.Invoice]
	ids   IDGenerator
	clock Clock
	log   *logger.Logger
}

// NewInvoiceStore carga la colección desde slots (nil = solo memoria) y construye el almacén.
func NewInvoiceStore(slots repository.SlotStore, cfg InvoiceStoreConfig) *InvoiceStore {
	if cfg.Key == "" {
		cfg.Key = DefaultSlotKey
	}
	if cfg.IDs == nil {
		cfg.IDs = UUIDGenerator{}
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	log := cfg.Log.Component("invoice_store")
	return &InvoiceStore{
		cell:  localstore.NewCell(slots, cfg.Key, []entity.Invoice{}, log),
		ids:   cfg.IDs,
		clock: cfg.Clock,
		log:   log,
	}
}

func (s *InvoiceStore) mustCell() *localstore.Cell[[]entity.Invoice] {
	if s == nil || s.cell == nil {
		panic(fmt.Sprintf("billing: %v: construya el almacén con NewInvoiceStore", domain.ErrStoreUninitialized))
	}
	return s.cell
}

// Invoices devuelve una copia de la colección en orden de inserción.
func (s *InvoiceStore) Invoices() []entity.Invoice {
	current := s.mustCell().Get()
	out := make([]entity.Invoice, 0, len(current))
	for _, inv := range current {
		out = append(out, inv.Clone())
	}
	return out
}

// AddInvoice crea una factura a partir del borrador: calcula el total, asigna un ID
// nuevo y el número de factura, la agrega al final y persiste la colección.
func (s *InvoiceStore) AddInvoice(draft entity.InvoiceDraft) entity.Invoice {
	cell := s.mustCell()

	inv := entity.Invoice{
		Customer:  draft.Customer,
		Items:     cloneItems(draft.Items),
		Status:    draft.Status,
		IssueDate: draft.IssueDate,
		DueDate:   draft.DueDate,
		Notes:     draft.Notes,
	}
	inv.TotalAmount = entity.CalculateTotal(inv.Items)

	cell.Update(func(current []entity.Invoice) ([]entity.Invoice, bool) {
		inv.ID = s.uniqueID(current)
		inv.InvoiceNumber = invoiceNumber(s.clock.Now())

		next := make([]entity.Invoice, len(current), len(current)+1)
		copy(next, current)
		return append(next, inv), true
	})

	s.log.Debug().Str("invoice_id", inv.ID).Str("number", inv.InvoiceNumber).Msg("factura creada")
	return inv.Clone()
}

// UpdateInvoice reemplaza la factura con el mismo ID conservando su posición, su ID
// y su número, y recalcula el total. Si el ID no existe la colección no cambia,
// no se escribe el slot y se devuelve domain.ErrNotFound.
func (s *InvoiceStore) UpdateInvoice(invoice entity.Invoice) (entity.Invoice, error) {
	cell := s.mustCell()

	var updated entity.Invoice
	found := cell.Update(func(current []entity.Invoice) ([]entity.Invoice, bool) {
		idx := indexOf(current, invoice.ID)
		if idx < 0 {
			return current, false
		}
		updated = invoice
		updated.Items = cloneItems(invoice.Items)
		updated.ID = current[idx].ID
		updated.InvoiceNumber = current[idx].InvoiceNumber
		updated.TotalAmount = entity.CalculateTotal(updated.Items)

		next := make([]entity.Invoice, len(current))
		copy(next, current)
		next[idx] = updated
		return next, true
	})
	if !found {
		return entity.Invoice{}, fmt.Errorf("%w: factura %s", domain.ErrNotFound, invoice.ID)
	}

	s.log.Debug().Str("invoice_id", updated.ID).Msg("factura actualizada")
	return updated.Clone(), nil
}

// DeleteInvoice elimina la factura con ese ID conservando el orden del resto.
// Es idempotente: si no existe no hace nada. Devuelve si hubo eliminación.
func (s *InvoiceStore) DeleteInvoice(id string) bool {
	cell := s.mustCell()

	removed := cell.Update(func(current []entity.Invoice) ([]entity.Invoice, bool) {
		idx := indexOf(current, id)
		if idx < 0 {
			return current, false
		}
		next := make([]entity.Invoice, 0, len(current)-1)
		next = append(next, current[:idx]...)
		return append(next, current[idx+1:]...), true
	})

	if removed {
		s.log.Debug().Str("invoice_id", id).Msg("factura eliminada")
	}
	return removed
}

// GetInvoiceByID busca en el estado actual; ok=false si no existe.
func (s *InvoiceStore) GetInvoiceByID(id string) (entity.Invoice, bool) {
	current := s.mustCell().Get()
	idx := indexOf(current, id)
	if idx < 0 {
		return entity.Invoice{}, false
	}
	return current[idx].Clone(), true
}

// uniqueID pide IDs hasta obtener uno que no esté en la colección.
func (s *InvoiceStore) uniqueID(current []entity.Invoice) string {
	gen := s.ids
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			s.log.Warn().Msg("el generador de IDs repite valores; se usa UUID")
			gen = UUIDGenerator{}
		}
		id := gen.NewID()
		if id != "" && indexOf(current, id) < 0 {
			return id
		}
	}
}

func indexOf(invoices []entity.Invoice, id string) int {
	for i := range invoices {
		if invoices[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []entity.InvoiceItem) []entity.InvoiceItem {
	if items == nil {
		return []entity.InvoiceItem{}
	}
	out := make([]entity.InvoiceItem, len(items))
	copy(out, items)
	return out
}

package billing

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/facturas-local/internal/domain/entity"
)

// StatusAll valor del filtro de estado que no filtra.
const StatusAll = "all"

// InvoiceFilter criterios del listado: estado y texto libre.
type InvoiceFilter struct {
	Status string // "all", "" o un entity.InvoiceStatus
	Query  string // se busca en nombre del cliente y número de factura
}

// FilterInvoices aplica el filtro conservando el orden de la colección.
// La búsqueda ignora mayúsculas/minúsculas con case folding Unicode.
func FilterInvoices(invoices []entity.Invoice, f InvoiceFilter) []entity.Invoice {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(f.Query))

	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if f.Status != "" && f.Status != StatusAll && string(inv.Status) != f.Status {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(inv.Customer.Name), query) &&
			!strings.Contains(fold.String(inv.InvoiceNumber), query) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

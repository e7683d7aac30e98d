package entity

import (
	"github.com/shopspring/decimal"
)

func init() {
	// El slot local guarda cantidades y montos como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// InvoiceStatus estado de cobro de una factura.
type InvoiceStatus string

// Estados de una factura.
const (
	InvoiceStatusPaid    InvoiceStatus = "paid"    // Pagada
	InvoiceStatusPending InvoiceStatus = "pending" // Pendiente de pago
	InvoiceStatusOverdue InvoiceStatus = "overdue" // Vencida
)

// Valid indica si el estado pertenece a la enumeración.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Invoice representa una factura completa tal como se guarda en el slot local.
// ID e InvoiceNumber se asignan al crearla y no cambian; TotalAmount es derivado.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Customer      Customer        `json:"customer"`
	Items         []InvoiceItem   `json:"items"`
	Status        InvoiceStatus   `json:"status"`
	IssueDate     string          `json:"issueDate"` // YYYY-MM-DD
	DueDate       string          `json:"dueDate"`   // YYYY-MM-DD o vacío
	Notes         string          `json:"notes,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// InvoiceDraft datos de una factura antes de existir: sin ID, número ni total.
type InvoiceDraft struct {
	Customer  Customer
	Items     []InvoiceItem
	Status    InvoiceStatus
	IssueDate string
	DueDate   string
	Notes     string
}

// CalculateTotal suma precio * cantidad de cada línea.
func CalculateTotal(items []InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Clone devuelve una copia que no comparte las líneas con el original.
func (inv Invoice) Clone() Invoice {
	out := inv
	if inv.Items != nil {
		out.Items = make([]InvoiceItem, len(inv.Items))
		copy(out.Items, inv.Items)
	}
	return out
}

package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturas-local/internal/domain"
	"github.com/jhoicas/facturas-local/internal/domain/entity"
)

// CustomerRequest datos del cliente en el formulario de factura.
type CustomerRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// InvoiceItemRequest línea del formulario (nombre, cantidad, precio unitario).
type InvoiceItemRequest struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// InvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
type InvoiceRequest struct {
	Customer  CustomerRequest      `json:"customer"`
	Items     []InvoiceItemRequest `json:"items"`
	Status    string               `json:"status,omitempty"`    // pending si va vacío
	IssueDate string               `json:"issueDate,omitempty"` // hoy si va vacío
	DueDate   string               `json:"dueDate,omitempty"`
	Notes     string               `json:"notes,omitempty"`
}

// Normalize recorta espacios y aplica los valores por defecto del formulario.
func (r *InvoiceRequest) Normalize(today time.Time) {
	r.Customer.Name = strings.TrimSpace(r.Customer.Name)
	r.Customer.Email = strings.TrimSpace(r.Customer.Email)
	r.Customer.Phone = strings.TrimSpace(r.Customer.Phone)
	for i := range r.Items {
		r.Items[i].Name = strings.TrimSpace(r.Items[i].Name)
	}
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = string(entity.InvoiceStatusPending)
	}
	r.IssueDate = strings.TrimSpace(r.IssueDate)
	if r.IssueDate == "" {
		r.IssueDate = today.Format(time.DateOnly)
	}
	r.DueDate = strings.TrimSpace(r.DueDate)
}

// Validate reglas del formulario: cliente con nombre, al menos una línea, cada línea
// con nombre y montos no negativos, estado válido y fechas YYYY-MM-DD.
// Los errores envuelven domain.ErrInvalidInput.
func (r *InvoiceRequest) Validate() error {
	if r.Customer.Name == "" {
		return fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("%w: agregue al menos una línea", domain.ErrInvalidInput)
	}
	for i, item := range r.Items {
		if item.Name == "" {
			return fmt.Errorf("%w: la línea %d no tiene nombre", domain.ErrInvalidInput, i+1)
		}
		if item.Quantity.IsNegative() {
			return fmt.Errorf("%w: la línea %d tiene cantidad negativa", domain.ErrInvalidInput, i+1)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: la línea %d tiene precio negativo", domain.ErrInvalidInput, i+1)
		}
	}
	if !entity.InvoiceStatus(r.Status).Valid() {
		return fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, r.Status)
	}
	if _, err := time.Parse(time.DateOnly, r.IssueDate); err != nil {
		return fmt.Errorf("%w: fecha de emisión %q", domain.ErrInvalidInput, r.IssueDate)
	}
	if r.DueDate != "" {
		if _, err := time.Parse(time.DateOnly, r.DueDate); err != nil {
			return fmt.Errorf("%w: fecha de vencimiento %q", domain.ErrInvalidInput, r.DueDate)
		}
	}
	return nil
}

// ToDraft convierte el formulario validado en borrador; los IDs que falten se generan con newID.
func (r *InvoiceRequest) ToDraft(newID func() string) entity.InvoiceDraft {
	customerID := r.Customer.ID
	if customerID == "" {
		customerID = newID()
	}
	items := make([]entity.InvoiceItem, 0, len(r.Items))
	for _, it := range r.Items {
		id := it.ID
		if id == "" {
			id = newID()
		}
		items = append(items, entity.InvoiceItem{ID: id, Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return entity.InvoiceDraft{
		Customer: entity.Customer{
			ID:    customerID,
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Items:     items,
		Status:    entity.InvoiceStatus(r.Status),
		IssueDate: r.IssueDate,
		DueDate:   r.DueDate,
		Notes:     r.Notes,
	}
}

// ApplyTo sobrescribe la factura existente con los datos del formulario (edición).
// ID, número y total quedan a cargo del almacén.
func (r *InvoiceRequest) ApplyTo(existing entity.Invoice, newID func() string) entity.Invoice {
	draft := r.ToDraft(newID)
	if r.Customer.ID == "" {
		draft.Customer.ID = existing.Customer.ID
	}
	existing.Customer = draft.Customer
	existing.Items = draft.Items
	existing.Status = draft.Status
	existing.IssueDate = draft.IssueDate
	existing.DueDate = draft.DueDate
	existing.Notes = draft.Notes
	return existing
}

// InvoiceResponse factura con el total formateado para mostrar.
type InvoiceResponse struct {
	entity.Invoice
	FormattedTotal string `json:"formattedTotal"`
}

// InvoiceListResponse respuesta de GET /api/invoices.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int               `json:"total"`
}

// MonthlyTotalsDTO montos de un mes de emisión.
type MonthlyTotalsDTO struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
	Pending decimal.Decimal `json:"pending"`
}

// SummaryResponse respuesta de GET /api/stats.
type SummaryResponse struct {
	TotalRevenue          decimal.Decimal    `json:"totalRevenue"`
	PendingAmount         decimal.Decimal    `json:"pendingAmount"`
	FormattedTotalRevenue string             `json:"formattedTotalRevenue"`
	FormattedPending      string             `json:"formattedPendingAmount"`
	InvoiceCount          int                `json:"invoiceCount"`
	PaidCount             int                `json:"paidCount"`
	CollectionRate        int                `json:"collectionRate"` // porcentaje
	Monthly               []MonthlyTotalsDTO `json:"monthly"`
}

package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de la factura. No tiene ciclo de vida propio.
type InvoiceItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"` // precio unitario
}

// Subtotal precio * cantidad de la línea.
func (i InvoiceItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(i.Quantity)
}

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-local/internal/domain/entity"
)

func TestCalculateTotal(t *testing.T) {
	items := []entity.InvoiceItem{
		{Name: "a", Quantity: decimal.NewFromInt(2), Price: decimal.RequireFromString("0.1")},
		{Name: "b", Quantity: decimal.NewFromInt(1), Price: decimal.RequireFromString("0.2")},
	}
	assert.Equal(t, "0.4", entity.CalculateTotal(items).String(), "aritmética decimal exacta, sin errores de float")
	assert.True(t, entity.CalculateTotal(nil).IsZero())
}

func TestInvoiceStatus_Valid(t *testing.T) {
	for _, s := range []entity.InvoiceStatus{entity.InvoiceStatusPaid, entity.InvoiceStatusPending, entity.InvoiceStatusOverdue} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, entity.InvoiceStatus("").Valid())
	assert.False(t, entity.InvoiceStatus("PAID").Valid())
}

func TestClone_NoComparteLineas(t *testing.T) {
	inv := entity.Invoice{Items: []entity.InvoiceItem{{Name: "original"}}}
	cp := inv.Clone()
	cp.Items[0].Name = "copia"
	assert.Equal(t, "original", inv.Items[0].Name)
}

func TestInvoice_FormatoDelSlot(t *testing.T) {
	inv := entity.Invoice{
		ID:            "a1",
		InvoiceNumber: "INV-000001",
		Customer:      entity.Customer{ID: "c1", Name: "Ali"},
		Items: []entity.InvoiceItem{
			{ID: "i1", Name: "Design", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)},
		},
		Status:      entity.InvoiceStatusPending,
		IssueDate:   "2024-01-01",
		DueDate:     "",
		TotalAmount: decimal.NewFromInt(200),
	}

	b, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "a1",
		"invoiceNumber": "INV-000001",
		"customer": {"id": "c1", "name": "Ali"},
		"items": [{"id": "i1", "name": "Design", "quantity": 2, "price": 100}],
		"status": "pending",
		"issueDate": "2024-01-01",
		"dueDate": "",
		"totalAmount": 200
	}`, string(b))
}

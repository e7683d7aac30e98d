package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturas-local/internal/application/billing"
	"github.com/jhoicas/facturas-local/internal/application/dto"
	"github.com/jhoicas/facturas-local/pkg/money"
)

// StatsHandler expone los indicadores de la colección.
type StatsHandler struct {
	store *billing.InvoiceStore
	money *money.Formatter
}

// NewStatsHandler construye el handler.
func NewStatsHandler(store *billing.InvoiceStore, formatter *money.Formatter) *StatsHandler {
	return &StatsHandler{store: store, money: formatter}
}

// GetSummary devuelve ingresos cobrados, monto pendiente, tasa de cobro y desglose mensual.
// GET /api/stats
//
// Los meses vienen del más reciente al más antiguo; los datos son los que consume
// el gráfico del frontend, no el gráfico en sí.
func (h *StatsHandler) GetSummary(c *fiber.Ctx) error {
	s := billing.Summarize(h.store.Invoices())

	out := dto.SummaryResponse{
		TotalRevenue:          s.TotalRevenue,
		PendingAmount:         s.PendingAmount,
		FormattedTotalRevenue: h.money.Format(s.TotalRevenue),
		FormattedPending:      h.money.Format(s.PendingAmount),
		InvoiceCount:          s.InvoiceCount,
		PaidCount:             s.PaidCount,
		CollectionRate:        s.CollectionRate,
		Monthly:               make([]dto.MonthlyTotalsDTO, 0, len(s.Monthly)),
	}
	for _, m := range s.Monthly {
		out.Monthly = append(out.Monthly, dto.MonthlyTotalsDTO{Month: m.Month, Revenue: m.Revenue, Pending: m.Pending})
	}
	return c.JSON(out)
}

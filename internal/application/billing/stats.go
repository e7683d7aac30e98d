package billing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturas-local/internal/domain/entity"
)

// MonthlyTotals montos cobrados y pendientes de un mes de emisión (YYYY-MM).
type MonthlyTotals struct {
	Month   string
	Revenue decimal.Decimal
	Pending decimal.Decimal
}

// Summary indicadores de la colección de facturas.
type Summary struct {
	TotalRevenue   decimal.Decimal // suma de facturas pagadas
	PendingAmount  decimal.Decimal // suma de facturas pendientes
	InvoiceCount   int
	PaidCount      int
	CollectionRate int // porcentaje de facturas pagadas, redondeado
	Monthly        []MonthlyTotals
}

// Summarize calcula los indicadores. Los meses van del más reciente al más antiguo;
// las facturas con fecha de emisión ilegible no entran en el desglose mensual.
func Summarize(invoices []entity.Invoice) Summary {
	s := Summary{
		TotalRevenue:  decimal.Zero,
		PendingAmount: decimal.Zero,
		InvoiceCount:  len(invoices),
		Monthly:       []MonthlyTotals{},
	}
	byMonth := make(map[string]*MonthlyTotals)

	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			s.PaidCount++
			s.TotalRevenue = s.TotalRevenue.Add(inv.TotalAmount)
		case entity.InvoiceStatusPending:
			s.PendingAmount = s.PendingAmount.Add(inv.TotalAmount)
		}

		issued, err := time.Parse(time.DateOnly, inv.IssueDate)
		if err != nil {
			continue
		}
		key := issued.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyTotals{Month: key, Revenue: decimal.Zero, Pending: decimal.Zero}
			byMonth[key] = m
		}
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			m.Revenue = m.Revenue.Add(inv.TotalAmount)
		case entity.InvoiceStatusPending:
			m.Pending = m.Pending.Add(inv.TotalAmount)
		}
	}

	if s.InvoiceCount > 0 {
		s.CollectionRate = int(decimal.NewFromInt(int64(s.PaidCount * 100)).
			Div(decimal.NewFromInt(int64(s.InvoiceCount))).
			Round(0).IntPart())
	}

	for _, m := range byMonth {
		s.Monthly = append(s.Monthly, *m)
	}
	sort.Slice(s.Monthly, func(i, j int) bool { return s.Monthly[i].Month > s.Monthly[j].Month })
	return s
}

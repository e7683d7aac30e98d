package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturas-local/internal/application/billing"
	"github.com/jhoicas/facturas-local/pkg/logger"
	"github.com/jhoicas/facturas-local/pkg/money"
)

// RouterDeps dependencias para el router. Store es la única instancia de la sesión.
type RouterDeps struct {
	Store *billing.InvoiceStore
	Money *money.Formatter
	Log   *logger.Logger
}

// Router registra las rutas de la API local.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Store, deps.Money)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	statsHandler := NewStatsHandler(deps.Store, deps.Money)
	api.Get("/stats", statsHandler.GetSummary)
}

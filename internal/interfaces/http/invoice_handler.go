package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturas-local/internal/application/billing"
	"github.com/jhoicas/facturas-local/internal/application/dto"
	"github.com/jhoicas/facturas-local/internal/domain"
	"github.com/jhoicas/facturas-local/internal/domain/entity"
	"github.com/jhoicas/facturas-local/pkg/money"
)

// InvoiceHandler maneja las vistas de facturas sobre el almacén de la sesión.
type InvoiceHandler struct {
	store *billing.InvoiceStore
	money *money.Formatter
	ids   billing.IDGenerator
	now   func() time.Time
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(store *billing.InvoiceStore, formatter *money.Formatter) *InvoiceHandler {
	return &InvoiceHandler{store: store, money: formatter, ids: billing.UUIDGenerator{}, now: time.Now}
}

// List lista facturas filtradas por estado y texto.
// GET /api/invoices?status=pending&q=ali
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	filter := billing.InvoiceFilter{
		Status: c.Query("status", billing.StatusAll),
		Query:  c.Query("q"),
	}
	if filter.Status != billing.StatusAll && !entity.InvoiceStatus(filter.Status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de filtro desconocido"})
	}

	list := billing.FilterInvoices(h.store.Invoices(), filter)
	out := dto.InvoiceListResponse{Items: make([]dto.InvoiceResponse, 0, len(list)), Total: len(list)}
	for _, inv := range list {
		out.Items = append(out.Items, h.toResponse(inv))
	}
	return c.JSON(out)
}

// Create crea una factura desde el formulario.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	in, err := h.parseForm(c)
	if err != nil {
		return writeError(c, err)
	}
	inv := h.store.AddInvoice(in.ToDraft(h.ids.NewID))
	return c.Status(fiber.StatusCreated).JSON(h.toResponse(inv))
}

// GetByID detalle de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, ok := h.store.GetInvoiceByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(h.toResponse(inv))
}

// Update edita una factura: la existente se combina con el formulario.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	in, err := h.parseForm(c)
	if err != nil {
		return writeError(c, err)
	}
	existing, ok := h.store.GetInvoiceByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	updated, err := h.store.UpdateInvoice(in.ApplyTo(existing, h.ids.NewID))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.toResponse(updated))
}

// Delete elimina una factura. Idempotente: 204 aunque no exista.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	h.store.DeleteInvoice(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *InvoiceHandler) parseForm(c *fiber.Ctx) (*dto.InvoiceRequest, error) {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, errInvalidBody
	}
	in.Normalize(h.now())
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

func (h *InvoiceHandler) toResponse(inv entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{Invoice: inv, FormattedTotal: h.money.Format(inv.TotalAmount)}
}

var errInvalidBody = errors.New("cuerpo inválido")

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errInvalidBody):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

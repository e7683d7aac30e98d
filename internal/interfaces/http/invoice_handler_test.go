package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-local/internal/application/billing"
	"github.com/jhoicas/facturas-local/internal/application/dto"
	apphttp "github.com/jhoicas/facturas-local/internal/interfaces/http"
	"github.com/jhoicas/facturas-local/internal/infrastructure/localstore"
	"github.com/jhoicas/facturas-local/pkg/logger"
	"github.com/jhoicas/facturas-local/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const aliForm = `{
	"customer": {"name": "Ali", "email": "ali@example.com"},
	"items": [{"name": "Design", "quantity": 2, "price": 100}],
	"status": "pending",
	"issueDate": "2024-01-01",
	"dueDate": "2024-02-01"
}`

// buildTestApp construye la app con un almacén en memoria y el router real.
func buildTestApp(t *testing.T) (*fiber.App, *billing.InvoiceStore, *localstore.MemoryStore) {
	t.Helper()
	slots := localstore.NewMemoryStore()
	store := billing.NewInvoiceStore(slots, billing.InvoiceStoreConfig{})
	formatter, err := money.NewFormatter("en", "USD")
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Store: store, Money: formatter, Log: logger.Nop()})
	return app, store, slots
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createAli(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/invoices", aliForm)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[map[string]any](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear / consultar
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DevuelveFacturaConTotalYNumero(t *testing.T) {
	app, store, _ := buildTestApp(t)

	body := createAli(t, app)

	assert.EqualValues(t, 200, body["totalAmount"])
	assert.Regexp(t, `^INV-\d{6}$`, body["invoiceNumber"])
	assert.NotEmpty(t, body["id"])
	assert.Contains(t, body["formattedTotal"], "200")
	customer := body["customer"].(map[string]any)
	assert.NotEmpty(t, customer["id"], "el ID del cliente se genera en el formulario")
	assert.Len(t, store.Invoices(), 1)
}

func TestCreate_ValidacionDelFormulario(t *testing.T) {
	app, store, _ := buildTestApp(t)

	cases := map[string]string{
		"sin cliente":      `{"customer":{"name":""},"items":[{"name":"a","quantity":1,"price":1}]}`,
		"sin líneas":       `{"customer":{"name":"Ali"},"items":[]}`,
		"línea sin nombre": `{"customer":{"name":"Ali"},"items":[{"name":"","quantity":1,"price":1}]}`,
		"estado inválido":  `{"customer":{"name":"Ali"},"items":[{"name":"a","quantity":1,"price":1}],"status":"void"}`,
	}
	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, "/api/invoices", form)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
		})
	}
	assert.Empty(t, store.Invoices(), "un formulario inválido nunca llega al almacén")
}

func TestCreate_CuerpoInvalido(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/invoices", `{no json`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestGetByID_ExisteYNoExiste(t *testing.T) {
	app, _, _ := buildTestApp(t)
	created := createAli(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/invoices/"+created["id"].(string), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, created["invoiceNumber"], decode[map[string]any](t, resp)["invoiceNumber"])

	resp = doRequest(t, app, http.MethodGet, "/api/invoices/no-existe", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestList_FiltraPorEstadoYTexto(t *testing.T) {
	app, _, _ := buildTestApp(t)
	createAli(t, app)
	doRequest(t, app, http.MethodPost, "/api/invoices",
		`{"customer":{"name":"Omar"},"items":[{"name":"Logo","quantity":1,"price":50}],"status":"paid","issueDate":"2024-01-05"}`)

	all := decode[map[string]any](t, doRequest(t, app, http.MethodGet, "/api/invoices", ""))
	assert.EqualValues(t, 2, all["total"])

	paid := decode[map[string]any](t, doRequest(t, app, http.MethodGet, "/api/invoices?status=paid", ""))
	assert.EqualValues(t, 1, paid["total"])

	search := decode[map[string]any](t, doRequest(t, app, http.MethodGet, "/api/invoices?q=ALI", ""))
	require.EqualValues(t, 1, search["total"])
	first := search["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Ali", first["customer"].(map[string]any)["name"])

	resp := doRequest(t, app, http.MethodGet, "/api/invoices?status=borrador", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Editar / eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_RecalculaTotalYConservaNumero(t *testing.T) {
	app, _, _ := buildTestApp(t)
	created := createAli(t, app)
	id := created["id"].(string)

	form := `{"customer":{"name":"Ali"},"items":[{"name":"Design","quantity":3,"price":100}],"status":"paid","issueDate":"2024-01-01"}`
	resp := doRequest(t, app, http.MethodPut, "/api/invoices/"+id, form)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, created["invoiceNumber"], body["invoiceNumber"])
	assert.EqualValues(t, 300, body["totalAmount"])
	assert.Equal(t, "paid", body["status"])
	assert.Equal(t, created["customer"].(map[string]any)["id"], body["customer"].(map[string]any)["id"])
}

func TestUpdate_IDInexistenteNoTocaElSlot(t *testing.T) {
	app, _, slots := buildTestApp(t)
	createAli(t, app)
	before, _, _ := slots.Get(billing.DefaultSlotKey)

	resp := doRequest(t, app, http.MethodPut, "/api/invoices/no-existe", aliForm)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	after, _, _ := slots.Get(billing.DefaultSlotKey)
	assert.Equal(t, before, after)
}

func TestDelete_IdempotenteCon204(t *testing.T) {
	app, store, _ := buildTestApp(t)
	id := createAli(t, app)["id"].(string)

	for i := 0; i < 2; i++ {
		resp := doRequest(t, app, http.MethodDelete, "/api/invoices/"+id, "")
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
	assert.Empty(t, store.Invoices())

	resp := doRequest(t, app, http.MethodGet, "/api/invoices/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	app, _, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}

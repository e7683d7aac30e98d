package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-local/internal/application/dto"
)

func TestGetSummary_ColeccionVacia(t *testing.T) {
	app, _, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/stats", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.EqualValues(t, 0, body["invoiceCount"])
	assert.EqualValues(t, 0, body["collectionRate"])
	assert.Equal(t, []any{}, body["monthly"])
}

func TestGetSummary_Indicadores(t *testing.T) {
	app, _, _ := buildTestApp(t)
	createAli(t, app)
	doRequest(t, app, http.MethodPost, "/api/invoices",
		`{"customer":{"name":"Omar"},"items":[{"name":"Logo","quantity":1,"price":50}],"status":"paid","issueDate":"2024-03-05"}`)

	resp := doRequest(t, app, http.MethodGet, "/api/stats", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	s := decode[dto.SummaryResponse](t, resp)

	assert.Equal(t, "50", s.TotalRevenue.String())
	assert.Equal(t, "200", s.PendingAmount.String())
	assert.Equal(t, 2, s.InvoiceCount)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 50, s.CollectionRate)
	require.Len(t, s.Monthly, 2)
	assert.Equal(t, "2024-03", s.Monthly[0].Month)
	assert.Equal(t, "2024-01", s.Monthly[1].Month)
	assert.Contains(t, s.FormattedPending, "200")
}

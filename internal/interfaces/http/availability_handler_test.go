package http_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandaplus/pos-api/internal/application/dto"
	"github.com/comandaplus/pos-api/internal/domain/entity"
)

func TestSyncEndpoint_PorProducto(t *testing.T) {
	w := newWorld()
	w.ingredients["ing-queso"].CurrentStock = decimal.Zero
	app := buildTestApp(w)

	resp := postJSON(t, app, "/api/availability/sync", dto.SyncAvailabilityRequest{
		ProductID: "prod-pizza",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.SyncReportResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, 1, out.Scanned)
	assert.Equal(t, 1, out.Disabled)
	require.Len(t, out.Details, 1)
	assert.Equal(t, "prod-pizza", out.Details[0].ProductID)
	assert.True(t, out.Details[0].Before)
	assert.False(t, out.Details[0].After)

	assert.False(t, w.products["prod-pizza"].Available, "la bandera quedó escrita")
}

func TestSyncEndpoint_ProductoNoExiste(t *testing.T) {
	app := buildTestApp(newWorld())

	resp := postJSON(t, app, "/api/availability/sync", dto.SyncAvailabilityRequest{
		ProductID: "prod-fantasma",
	})

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

// Lote de punta a punta: el hook de deducción agota el queso y la corrida
// posterior apaga la pizza usando los movimientos recientes como alcance.
func TestSyncEndpoint_LoteTrasDeduccion(t *testing.T) {
	w := newWorld()
	w.orders["ord-grande"] = []*entity.OrderItem{
		{OrderID: "ord-grande", ProductID: "prod-pizza", Quantity: 3}, // 0.75 de queso: lo agota exacto
	}
	app := buildTestApp(w)

	resp := postJSON(t, app, "/api/stock/orders/ord-grande/deduct", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.True(t, w.ingredients["ing-queso"].CurrentStock.IsZero())

	resp = postJSON(t, app, "/api/availability/sync", dto.SyncAvailabilityRequest{})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.SyncReportResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, 1, out.Scanned, "solo la pizza usa ingredientes con movimientos")
	assert.Equal(t, 1, out.Disabled)
	assert.False(t, w.products["prod-pizza"].Available)
	assert.True(t, w.products["prod-gaseosa"].Available, "sin receta nunca se apaga")
}

func TestProductsEndpoint_ListaBanderas(t *testing.T) {
	w := newWorld()
	w.products["prod-pizza"].Available = false
	app := buildTestApp(w)

	resp := getPath(t, app, "/api/availability/products")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ProductAvailabilityListResponse
	decodeBody(t, resp, &out)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Gaseosa", out.Items[0].Name)
	assert.True(t, out.Items[0].Available)
	assert.Equal(t, "Pizza margarita", out.Items[1].Name)
	assert.False(t, out.Items[1].Available)
	assert.Equal(t, 20, out.Page.Limit)
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandaplus/pos-api/internal/application/availability"
	"github.com/comandaplus/pos-api/internal/application/dto"
	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/internal/application/usecase"
	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
	apphttp "github.com/comandaplus/pos-api/internal/interfaces/http"
	"github.com/comandaplus/pos-api/pkg/logger"
	"github.com/comandaplus/pos-api/pkg/normalize"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mundo en memoria detrás de la API completa. Los repos devuelven copias,
// como lo haría un scan de fila; txFail simula un ledger caído.
// ──────────────────────────────────────────────────────────────────────────────

type world struct {
	ingredients map[string]*entity.Ingredient
	history     []*entity.StockHistory
	recipes     map[string][]*entity.RecipeItem
	orders      map[string][]*entity.OrderItem
	products    map[string]*entity.Product

	txFail error
}

// newWorld arma el escenario base: harina 10 kg (mínimo 5), queso 0.75 kg
// (mínimo 0.5); la pizza lleva 0.3 de harina y 0.25 de queso; la gaseosa no
// tiene receta. ord-1 es una pizza doble.
func newWorld() *world {
	d := decimal.RequireFromString
	return &world{
		ingredients: map[string]*entity.Ingredient{
			"ing-harina": {ID: "ing-harina", Name: "Harina de trigo", Unit: entity.UnitKilogram,
				CurrentStock: d("10"), MinimumStock: d("5"), Active: true},
			"ing-queso": {ID: "ing-queso", Name: "Queso mozzarella", Unit: entity.UnitKilogram,
				CurrentStock: d("0.75"), MinimumStock: d("0.5"), Active: true},
		},
		recipes: map[string][]*entity.RecipeItem{
			"prod-pizza": {
				{ProductID: "prod-pizza", IngredientID: "ing-harina", QuantityRequired: d("0.3")},
				{ProductID: "prod-pizza", IngredientID: "ing-queso", QuantityRequired: d("0.25")},
			},
		},
		orders: map[string][]*entity.OrderItem{
			"ord-1": {{OrderID: "ord-1", ProductID: "prod-pizza", Quantity: 2}},
		},
		products: map[string]*entity.Product{
			"prod-pizza":   {ID: "prod-pizza", Name: "Pizza margarita", Available: true, Active: true},
			"prod-gaseosa": {ID: "prod-gaseosa", Name: "Gaseosa", Available: true, Active: true},
		},
	}
}

type ingredientRepo struct {
	repository.IngredientRepository
	w *world
}

func (r *ingredientRepo) Create(_ context.Context, ing *entity.Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	c := *ing
	r.w.ingredients[ing.ID] = &c
	return nil
}

func (r *ingredientRepo) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	ing, ok := r.w.ingredients[id]
	if !ok {
		return nil, nil
	}
	c := *ing
	return &c, nil
}

func (r *ingredientRepo) GetByName(_ context.Context, name string) (*entity.Ingredient, error) {
	want := normalize.Name(name)
	for _, ing := range r.w.ingredients {
		if normalize.Name(ing.Name) == want {
			c := *ing
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ingredientRepo) List(_ context.Context, includeInactive bool, limit, offset int) ([]*entity.Ingredient, error) {
	var all []*entity.Ingredient
	for _, ing := range r.w.ingredients {
		if !includeInactive && !ing.Active {
			continue
		}
		c := *ing
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *ingredientRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, id := range ids {
		if ing, ok := r.w.ingredients[id]; ok {
			c := *ing
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ingredientRepo) Update(_ context.Context, ing *entity.Ingredient) error {
	c := *ing
	r.w.ingredients[ing.ID] = &c
	return nil
}

func (r *ingredientRepo) GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error) {
	return r.GetByID(ctx, id)
}

func (r *ingredientRepo) UpdateStock(_ context.Context, id string, newStock decimal.Decimal) error {
	r.w.ingredients[id].CurrentStock = newStock
	return nil
}

type historyRepo struct {
	repository.StockHistoryRepository
	w *world
}

func (r *historyRepo) Create(_ context.Context, h *entity.StockHistory) error {
	r.w.history = append(r.w.history, h)
	return nil
}

func (r *historyRepo) ListByIngredient(_ context.Context, ingredientID string, limit, offset int) ([]*entity.StockHistory, error) {
	var desc []*entity.StockHistory
	for i := len(r.w.history) - 1; i >= 0; i-- {
		if r.w.history[i].IngredientID == ingredientID {
			desc = append(desc, r.w.history[i])
		}
	}
	if offset >= len(desc) {
		return nil, nil
	}
	desc = desc[offset:]
	if len(desc) > limit {
		desc = desc[:limit]
	}
	return desc, nil
}

func (r *historyRepo) ListByIngredientAsc(_ context.Context, ingredientID string) ([]*entity.StockHistory, error) {
	var out []*entity.StockHistory
	for _, h := range r.w.history {
		if h.IngredientID == ingredientID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *historyRepo) ListByOrder(_ context.Context, orderID string) ([]*entity.StockHistory, error) {
	var out []*entity.StockHistory
	for _, h := range r.w.history {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *historyRepo) DistinctIngredientIDsSince(_ context.Context, since time.Time) ([]string, error) {
	seen := make(map[string]struct{})
	for _, h := range r.w.history {
		if !h.CreatedAt.Before(since) {
			seen[h.IngredientID] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

type recipeRepo struct{ w *world }

func (r *recipeRepo) ListByProduct(_ context.Context, productID string) ([]*entity.RecipeItem, error) {
	return r.w.recipes[productID], nil
}

func (r *recipeRepo) ProductIDsByIngredients(_ context.Context, ingredientIDs []string) ([]string, error) {
	want := make(map[string]struct{}, len(ingredientIDs))
	for _, id := range ingredientIDs {
		want[id] = struct{}{}
	}
	var out []string
	for productID, items := range r.w.recipes {
		for _, it := range items {
			if _, ok := want[it.IngredientID]; ok {
				out = append(out, productID)
				break
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

type orderRepo struct{ w *world }

func (r *orderRepo) ListItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	return r.w.orders[orderID], nil
}

type productRepo struct{ w *world }

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.w.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *productRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	ids := make([]string, 0, len(r.w.products))
	for id := range r.w.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Product, 0, limit)
	for i, id := range ids {
		if i < offset || len(out) == limit {
			continue
		}
		c := *r.w.products[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *productRepo) UpdateAvailability(_ context.Context, id string, available bool) error {
	r.w.products[id].Available = available
	return nil
}

type txRunner struct{ w *world }

func (t *txRunner) Run(_ context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	if t.w.txFail != nil {
		return t.w.txFail
	}
	return fn(&ingredientRepo{w: t.w}, &historyRepo{w: t.w})
}

func (t *txRunner) RunOrder(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	if t.w.txFail != nil {
		return t.w.txFail
	}
	return fn(&orderRepo{w: t.w}, &recipeRepo{w: t.w}, &ingredientRepo{w: t.w}, &historyRepo{w: t.w})
}

type noopNotifier struct{}

func (noopNotifier) NotifyLowStock(context.Context, string) {}

// buildTestApp levanta la API completa sobre el mundo en memoria, con el
// mismo cableado del router de producción.
func buildTestApp(w *world) *fiber.App {
	log := logger.Nop()
	engine := stock.NewEngine(&txRunner{w: w}, noopNotifier{}, log)
	validator := stock.NewValidator(stock.NewResolver(&recipeRepo{w: w}), &ingredientRepo{w: w}, log)
	auditUC := stock.NewAuditUseCase(&ingredientRepo{w: w}, &historyRepo{w: w})
	syncUC := availability.NewSyncUseCase(&productRepo{w: w}, &recipeRepo{w: w}, &ingredientRepo{w: w}, &historyRepo{w: w}, 60, log)
	ingredientUC := usecase.NewIngredientUseCase(&ingredientRepo{w: w}, &historyRepo{w: w}, engine)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		IngredientUC: ingredientUC,
		Engine:       engine,
		Validator:    validator,
		AuditUC:      auditUC,
		SyncUC:       syncUC,
		Log:          log,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/stock/validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateEndpoint_PedidoCumplible(t *testing.T) {
	app := buildTestApp(newWorld())

	resp := postJSON(t, app, "/api/stock/validate", dto.ValidateStockRequest{
		Items: []dto.ValidateStockItem{{ProductID: "prod-pizza", Quantity: 2}},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockValidationResponse
	decodeBody(t, resp, &out)
	assert.True(t, out.Fulfillable)
	assert.Empty(t, out.Missing)
	assert.Nil(t, out.MaxPortions)
}

func TestValidateEndpoint_FaltantesYCota(t *testing.T) {
	app := buildTestApp(newWorld())

	resp := postJSON(t, app, "/api/stock/validate", dto.ValidateStockRequest{
		Items: []dto.ValidateStockItem{{ProductID: "prod-pizza", Quantity: 4}},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockValidationResponse
	decodeBody(t, resp, &out)
	assert.False(t, out.Fulfillable)
	require.Len(t, out.Missing, 1)
	assert.Equal(t, "ing-queso", out.Missing[0].IngredientID)
	assert.True(t, out.Missing[0].Shortage.Equal(decimal.RequireFromString("0.25")))
	require.NotNil(t, out.MaxPortions)
	assert.EqualValues(t, 3, *out.MaxPortions)
}

func TestValidateEndpoint_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(newWorld())

	req := httptest.NewRequest(http.MethodPost, "/api/stock/validate", strings.NewReader("{esto no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "INVALID_BODY", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Hooks del ciclo de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestDeductEndpoint_RespondeAceptadoYDescuenta(t *testing.T) {
	w := newWorld()
	app := buildTestApp(w)

	resp := postJSON(t, app, "/api/stock/orders/ord-1/deduct", nil)

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var out dto.AcceptedResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "accepted", out.Status)
	assert.Equal(t, "ord-1", out.OrderID)

	assert.True(t, w.ingredients["ing-harina"].CurrentStock.Equal(decimal.RequireFromString("9.4")))
	assert.True(t, w.ingredients["ing-queso"].CurrentStock.Equal(decimal.RequireFromString("0.25")))
}

// La frontera catch-and-log: con el ledger caído el hook registra la falla y
// responde 202 igual. El pedido es la fuente de verdad; el faltante se
// reconcilia después por auditoría.
func TestDeductEndpoint_FallaDelLedgerNoVetaElPedido(t *testing.T) {
	w := newWorld()
	w.txFail = context.DeadlineExceeded
	app := buildTestApp(w)

	resp := postJSON(t, app, "/api/stock/orders/ord-1/deduct", nil)

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var out dto.AcceptedResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "accepted", out.Status)
	assert.True(t, w.ingredients["ing-harina"].CurrentStock.Equal(decimal.RequireFromString("10")),
		"nada se descontó; la falla quedó solo en el log")
}

func TestRestoreEndpoint_DevuelveLoConsumido(t *testing.T) {
	w := newWorld()
	app := buildTestApp(w)

	resp := postJSON(t, app, "/api/stock/orders/ord-1/deduct", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp = postJSON(t, app, "/api/stock/orders/ord-1/restore", nil)

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.True(t, w.ingredients["ing-harina"].CurrentStock.Equal(decimal.RequireFromString("10")))
	assert.True(t, w.ingredients["ing-queso"].CurrentStock.Equal(decimal.RequireFromString("0.75")))
}

func TestOrderHistoryEndpoint_ListaLoQueElPedidoMovio(t *testing.T) {
	app := buildTestApp(newWorld())

	resp := postJSON(t, app, "/api/stock/orders/ord-1/deduct", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp = getPath(t, app, "/api/stock/orders/ord-1/history")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.OrderHistoryResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "ord-1", out.OrderID)
	require.Len(t, out.Items, 2, "la pizza consume harina y queso")
	for _, it := range out.Items {
		assert.Equal(t, entity.StockOpOrderConsumption, it.Type)
		assert.Equal(t, "ord-1", it.OrderID)
	}
}

// Un pedido cuyo hook falló no deja rastro: la lista vacía es la señal de
// reconciliación pendiente.
func TestOrderHistoryEndpoint_PedidoSinMovimientos(t *testing.T) {
	app := buildTestApp(newWorld())

	resp := getPath(t, app, "/api/stock/orders/ord-fantasma/history")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.OrderHistoryResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "ord-fantasma", out.OrderID)
	assert.Empty(t, out.Items)
}

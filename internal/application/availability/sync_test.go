package availability_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandaplus/pos-api/internal/application/availability"
	"github.com/comandaplus/pos-api/internal/domain"
	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
	"github.com/comandaplus/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes. Los repos devuelven copias, como lo haría un scan de fila.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts struct {
	products   map[string]*entity.Product
	updates    map[string]bool // escrituras de bandera, por producto
	failGetFor map[string]error
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if err := f.failGetFor[id]; err != nil {
		return nil, err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakeProducts) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	ids := make([]string, 0, len(f.products))
	for id := range f.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Product, 0, limit)
	for i, id := range ids {
		if i < offset || len(out) == limit {
			continue
		}
		c := *f.products[id]
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeProducts) UpdateAvailability(_ context.Context, id string, available bool) error {
	f.updates[id] = available
	f.products[id].Available = available
	return nil
}

type fakeRecipes struct {
	recipes        map[string][]*entity.RecipeItem
	productIDs     []string // respuesta de ProductIDsByIngredients
	gotIngredients []string
	failList       error
}

func (f *fakeRecipes) ListByProduct(_ context.Context, productID string) ([]*entity.RecipeItem, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	return f.recipes[productID], nil
}

func (f *fakeRecipes) ProductIDsByIngredients(_ context.Context, ingredientIDs []string) ([]string, error) {
	f.gotIngredients = ingredientIDs
	return f.productIDs, nil
}

type fakeIngredientReader struct {
	repository.IngredientRepository
	ingredients   map[string]*entity.Ingredient
	failListByIDs error
}

func (f *fakeIngredientReader) ListByIDs(_ context.Context, ids []string) ([]*entity.Ingredient, error) {
	if f.failListByIDs != nil {
		return nil, f.failListByIDs
	}
	var out []*entity.Ingredient
	for _, id := range ids {
		if ing, ok := f.ingredients[id]; ok {
			c := *ing
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeMovements struct {
	repository.StockHistoryRepository
	ids      []string
	gotSince time.Time
}

func (f *fakeMovements) DistinctIngredientIDsSince(_ context.Context, since time.Time) ([]string, error) {
	f.gotSince = since
	return f.ids, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Mundo base: pizza (disponible, con receta) y gaseosa (sin receta);
// harina 10 kg, queso 0.75 kg.
// ──────────────────────────────────────────────────────────────────────────────

type syncWorld struct {
	products  *fakeProducts
	recipes   *fakeRecipes
	stock     *fakeIngredientReader
	movements *fakeMovements
}

func newSyncWorld() *syncWorld {
	return &syncWorld{
		products: &fakeProducts{
			products: map[string]*entity.Product{
				"prod-pizza":   {ID: "prod-pizza", Name: "Pizza margarita", Available: true, Active: true},
				"prod-gaseosa": {ID: "prod-gaseosa", Name: "Gaseosa", Available: true, Active: true},
			},
			updates:    map[string]bool{},
			failGetFor: map[string]error{},
		},
		recipes: &fakeRecipes{
			recipes: map[string][]*entity.RecipeItem{
				"prod-pizza": {
					{ProductID: "prod-pizza", IngredientID: "ing-harina", QuantityRequired: decimal.RequireFromString("0.3")},
					{ProductID: "prod-pizza", IngredientID: "ing-queso", QuantityRequired: decimal.RequireFromString("0.25")},
				},
			},
		},
		stock: &fakeIngredientReader{
			ingredients: map[string]*entity.Ingredient{
				"ing-harina": {ID: "ing-harina", Name: "Harina de trigo", CurrentStock: decimal.RequireFromString("10"), MinimumStock: decimal.RequireFromString("5")},
				"ing-queso":  {ID: "ing-queso", Name: "Queso mozzarella", CurrentStock: decimal.RequireFromString("0.75"), MinimumStock: decimal.RequireFromString("0.5")},
			},
		},
		movements: &fakeMovements{},
	}
}

func (w *syncWorld) useCase(lookback int) *availability.SyncUseCase {
	return availability.NewSyncUseCase(w.products, w.recipes, w.stock, w.movements, lookback, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// SyncOne
// ──────────────────────────────────────────────────────────────────────────────

func TestSyncOne_DeshabilitaConIngredienteAgotado(t *testing.T) {
	w := newSyncWorld()
	w.stock.ingredients["ing-queso"].CurrentStock = decimal.Zero

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-pizza")

	require.NoError(t, err)
	assert.True(t, detail.Before)
	assert.False(t, detail.After)
	got, written := w.products.updates["prod-pizza"]
	require.True(t, written, "la bandera cambió: debe escribirse")
	assert.False(t, got)
}

func TestSyncOne_RehabilitaAlRecuperarStock(t *testing.T) {
	w := newSyncWorld()
	w.products.products["prod-pizza"].Available = false

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-pizza")

	require.NoError(t, err)
	assert.False(t, detail.Before)
	assert.True(t, detail.After)
	assert.True(t, w.products.updates["prod-pizza"])
}

func TestSyncOne_SinCambioNoEscribe(t *testing.T) {
	w := newSyncWorld()

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-pizza")

	require.NoError(t, err)
	assert.True(t, detail.Before)
	assert.True(t, detail.After)
	assert.Empty(t, w.products.updates, "recalcular es idempotente; sin cambio no hay escritura")
}

func TestSyncOne_StockNegativoTambienDeshabilita(t *testing.T) {
	w := newSyncWorld()
	w.stock.ingredients["ing-harina"].CurrentStock = decimal.RequireFromString("-2")

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-pizza")

	require.NoError(t, err)
	assert.False(t, detail.After, "el sobregiro del ledger cuenta como agotado")
}

func TestSyncOne_StockBajoPeroPositivoNoBloquea(t *testing.T) {
	w := newSyncWorld()
	w.stock.ingredients["ing-queso"].CurrentStock = decimal.RequireFromString("0.1")

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-pizza")

	require.NoError(t, err)
	assert.True(t, detail.After, "bajo el mínimo es alerta, no bloqueo")
}

func TestSyncOne_SinRecetaSiempreDisponible(t *testing.T) {
	w := newSyncWorld()
	w.products.products["prod-gaseosa"].Available = false

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-gaseosa")

	require.NoError(t, err)
	assert.True(t, detail.After)
}

func TestSyncOne_IngredienteEliminadoNoRestringe(t *testing.T) {
	w := newSyncWorld()
	w.recipes.recipes["prod-pizza"] = append(w.recipes.recipes["prod-pizza"],
		&entity.RecipeItem{ProductID: "prod-pizza", IngredientID: "ing-borrado", QuantityRequired: decimal.RequireFromString("1")})

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-pizza")

	require.NoError(t, err)
	assert.True(t, detail.After)
}

func TestSyncOne_ProductoInexistente(t *testing.T) {
	w := newSyncWorld()
	_, err := w.useCase(60).SyncOne(context.Background(), "prod-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Fail open: una lectura fallida nunca esconde un producto vendible.
func TestSyncOne_RecetaIlegibleQuedaDisponible(t *testing.T) {
	w := newSyncWorld()
	w.recipes.failList = errors.New("timeout")
	w.products.products["prod-pizza"].Available = false

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-pizza")

	require.NoError(t, err)
	assert.True(t, detail.After)
}

func TestSyncOne_StockIlegibleQuedaDisponible(t *testing.T) {
	w := newSyncWorld()
	w.stock.failListByIDs = errors.New("pool cerrado")
	w.stock.ingredients["ing-queso"].CurrentStock = decimal.Zero

	detail, err := w.useCase(60).SyncOne(context.Background(), "prod-pizza")

	require.NoError(t, err)
	assert.True(t, detail.After)
}

// ──────────────────────────────────────────────────────────────────────────────
// SyncBatch
// ──────────────────────────────────────────────────────────────────────────────

func TestSyncBatch_RecalculaSoloLosProductosTocados(t *testing.T) {
	w := newSyncWorld()
	w.stock.ingredients["ing-queso"].CurrentStock = decimal.Zero
	w.movements.ids = []string{"ing-queso"}
	w.recipes.productIDs = []string{"prod-pizza"}

	report, err := w.useCase(60).SyncBatch(context.Background(), 45)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 0, report.Enabled)
	assert.Equal(t, 1, report.Disabled)
	require.Len(t, report.Details, 1)
	assert.Equal(t, "prod-pizza", report.Details[0].ProductID)

	assert.Equal(t, []string{"ing-queso"}, w.recipes.gotIngredients,
		"solo se consultan productos cuyas recetas tocan los ingredientes movidos")
	assert.WithinDuration(t, time.Now().Add(-45*time.Minute), w.movements.gotSince, time.Minute,
		"la ventana parte de ahora menos los minutos pedidos")
}

func TestSyncBatch_VentanaPorDefecto(t *testing.T) {
	w := newSyncWorld()

	_, err := w.useCase(120).SyncBatch(context.Background(), 0)

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(-120*time.Minute), w.movements.gotSince, time.Minute)
}

func TestSyncBatch_CuentaCambiosEnAmbasDirecciones(t *testing.T) {
	w := newSyncWorld()
	w.stock.ingredients["ing-queso"].CurrentStock = decimal.Zero // apaga la pizza
	w.products.products["prod-gaseosa"].Available = false        // la gaseosa revive
	w.movements.ids = []string{"ing-queso"}
	w.recipes.productIDs = []string{"prod-gaseosa", "prod-pizza"}

	report, err := w.useCase(60).SyncBatch(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Enabled)
	assert.Equal(t, 1, report.Disabled)
	assert.Len(t, report.Details, 2)
}

func TestSyncBatch_AislaFallasPorProducto(t *testing.T) {
	w := newSyncWorld()
	w.products.failGetFor["prod-roto"] = errors.New("fila corrupta")
	w.movements.ids = []string{"ing-harina"}
	w.recipes.productIDs = []string{"prod-roto", "prod-pizza"}

	report, err := w.useCase(60).SyncBatch(context.Background(), 30)

	require.NoError(t, err, "una falla por producto no tumba el lote")
	assert.Equal(t, 1, report.Scanned)
	require.Len(t, report.Details, 1)
	assert.Equal(t, "prod-pizza", report.Details[0].ProductID)
}

func TestSyncBatch_SinMovimientosNoHaceNada(t *testing.T) {
	w := newSyncWorld()

	report, err := w.useCase(60).SyncBatch(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Scanned)
	assert.Empty(t, report.Details)
	assert.Empty(t, w.products.updates)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListFlags
// ──────────────────────────────────────────────────────────────────────────────

func TestListFlags_DevuelveBanderasVigentes(t *testing.T) {
	w := newSyncWorld()
	w.products.products["prod-pizza"].Available = false

	flags, err := w.useCase(60).ListFlags(context.Background(), 10, 0)

	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, "prod-gaseosa", flags[0].ProductID)
	assert.True(t, flags[0].Available)
	assert.Equal(t, "prod-pizza", flags[1].ProductID)
	assert.False(t, flags[1].Available)
}

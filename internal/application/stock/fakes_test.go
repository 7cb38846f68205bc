package stock_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mundo en memoria para los tests del motor. Los repos devuelven copias de
// las entidades, como lo haría un scan de fila: mutar lo devuelto no toca el
// almacén, solo UpdateStock escribe.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	ingredients map[string]*entity.Ingredient
	history     []*entity.StockHistory
	recipes     map[string][]*entity.RecipeItem // por producto
	orders      map[string][]*entity.OrderItem  // por pedido

	lockOrder []string // IDs en el orden en que se pidió GetForUpdate

	failGetForUpdate error
	failUpdateStock  map[string]error
	failListByIDs    error
	failRecipes      error
}

func newMemStore() *memStore {
	return &memStore{
		ingredients:     map[string]*entity.Ingredient{},
		recipes:         map[string][]*entity.RecipeItem{},
		orders:          map[string][]*entity.OrderItem{},
		failUpdateStock: map[string]error{},
	}
}

func (s *memStore) addIngredient(id, name, unit, stockStr, minStr string) {
	s.ingredients[id] = &entity.Ingredient{
		ID:           id,
		Name:         name,
		Unit:         unit,
		CurrentStock: decimal.RequireFromString(stockStr),
		MinimumStock: decimal.RequireFromString(minStr),
		Active:       true,
	}
}

func (s *memStore) addRecipe(productID string, parts map[string]string) {
	items := make([]*entity.RecipeItem, 0, len(parts))
	for ingID, qty := range parts {
		items = append(items, &entity.RecipeItem{
			ProductID:        productID,
			IngredientID:     ingID,
			QuantityRequired: decimal.RequireFromString(qty),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].IngredientID < items[j].IngredientID })
	s.recipes[productID] = items
}

func (s *memStore) addOrderLine(orderID, productID string, qty int) {
	s.orders[orderID] = append(s.orders[orderID], &entity.OrderItem{
		OrderID: orderID, ProductID: productID, Quantity: qty,
	})
}

func (s *memStore) stockOf(id string) decimal.Decimal {
	return s.ingredients[id].CurrentStock
}

func (s *memStore) historyOf(id string) []*entity.StockHistory {
	var out []*entity.StockHistory
	for _, h := range s.history {
		if h.IngredientID == id {
			out = append(out, h)
		}
	}
	return out
}

// ── repos ─────────────────────────────────────────────────────────────────────

type memIngredientRepo struct {
	repository.IngredientRepository
	s *memStore
}

func (r *memIngredientRepo) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	ing, ok := r.s.ingredients[id]
	if !ok {
		return nil, nil
	}
	c := *ing
	return &c, nil
}

func (r *memIngredientRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Ingredient, error) {
	if r.s.failListByIDs != nil {
		return nil, r.s.failListByIDs
	}
	var out []*entity.Ingredient
	for _, id := range ids {
		if ing, ok := r.s.ingredients[id]; ok {
			c := *ing
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memIngredientRepo) GetForUpdate(_ context.Context, id string) (*entity.Ingredient, error) {
	if r.s.failGetForUpdate != nil {
		return nil, r.s.failGetForUpdate
	}
	r.s.lockOrder = append(r.s.lockOrder, id)
	ing, ok := r.s.ingredients[id]
	if !ok {
		return nil, nil
	}
	c := *ing
	return &c, nil
}

func (r *memIngredientRepo) UpdateStock(_ context.Context, id string, newStock decimal.Decimal) error {
	if err := r.s.failUpdateStock[id]; err != nil {
		return err
	}
	r.s.ingredients[id].CurrentStock = newStock
	return nil
}

type memRecipeRepo struct {
	repository.RecipeRepository
	s *memStore
}

func (r *memRecipeRepo) ListByProduct(_ context.Context, productID string) ([]*entity.RecipeItem, error) {
	if r.s.failRecipes != nil {
		return nil, r.s.failRecipes
	}
	return r.s.recipes[productID], nil
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) ListItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	return r.s.orders[orderID], nil
}

type memHistoryRepo struct {
	repository.StockHistoryRepository
	s *memStore
}

func (r *memHistoryRepo) Create(_ context.Context, h *entity.StockHistory) error {
	r.s.history = append(r.s.history, h)
	return nil
}

func (r *memHistoryRepo) ListByIngredientAsc(_ context.Context, ingredientID string) ([]*entity.StockHistory, error) {
	return r.s.historyOf(ingredientID), nil
}

// ── transacciones y notificador ──────────────────────────────────────────────

// memTxRunner pasa los repos en memoria sin transacción real: los tests del
// motor verifican propagación de errores, no el rollback del driver.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	return fn(&memIngredientRepo{s: t.s}, &memHistoryRepo{s: t.s})
}

func (t *memTxRunner) RunOrder(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	return fn(&memOrderRepo{s: t.s}, &memRecipeRepo{s: t.s}, &memIngredientRepo{s: t.s}, &memHistoryRepo{s: t.s})
}

type spyNotifier struct{ notified []string }

func (n *spyNotifier) NotifyLowStock(_ context.Context, ingredientID string) {
	n.notified = append(n.notified, ingredientID)
}

var _ stock.TxRunner = (*memTxRunner)(nil)
var _ stock.LowStockNotifier = (*spyNotifier)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Mundo base: harina 10 kg (mínimo 5), queso 0.75 kg (mínimo 0.5),
// pan lleva 2 kg de harina, pizza lleva 0.3 de harina y 0.25 de queso.
// ──────────────────────────────────────────────────────────────────────────────

func demoWorld() *memStore {
	s := newMemStore()
	s.addIngredient("ing-harina", "Harina de trigo", entity.UnitKilogram, "10", "5")
	s.addIngredient("ing-queso", "Queso mozzarella", entity.UnitKilogram, "0.75", "0.5")
	s.addRecipe("prod-pan", map[string]string{"ing-harina": "2"})
	s.addRecipe("prod-pizza", map[string]string{"ing-harina": "0.3", "ing-queso": "0.25"})
	return s
}

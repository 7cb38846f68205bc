package stock

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
)

// IngredientRequirement cuánto exige un producto de un ingrediente:
// PerUnit por unidad de producto, Total para la cantidad pedida.
type IngredientRequirement struct {
	IngredientID string
	PerUnit      decimal.Decimal
	Total        decimal.Decimal
}

// OrderRequirement par (ingrediente, total) agregado para un pedido completo.
type OrderRequirement struct {
	IngredientID string
	Total        decimal.Decimal
}

// Resolver traduce producto+cantidad a requerimientos de ingredientes.
// Lectura pura sobre la configuración de recetas; no toca el ledger.
type Resolver struct {
	recipeRepo repository.RecipeRepository
}

// NewResolver construye el resolver sobre el repo de recetas (pool o tx).
func NewResolver(recipeRepo repository.RecipeRepository) *Resolver {
	return &Resolver{recipeRepo: recipeRepo}
}

// ResolveProduct devuelve los requerimientos de qty unidades de un producto.
// Producto sin receta → slice vacío (sin restricción de ingredientes).
func (r *Resolver) ResolveProduct(ctx context.Context, productID string, qty int) ([]IngredientRequirement, error) {
	items, err := r.recipeRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	factor := decimal.NewFromInt(int64(qty))
	reqs := make([]IngredientRequirement, 0, len(items))
	for _, it := range items {
		reqs = append(reqs, IngredientRequirement{
			IngredientID: it.IngredientID,
			PerUnit:      it.QuantityRequired,
			Total:        it.QuantityRequired.Mul(factor),
		})
	}
	return reqs, nil
}

// ResolveOrder agrega los requerimientos de todas las líneas de un pedido
// (mismo ingrediente sumado entre líneas) y devuelve los pares ordenados por
// ID de ingrediente: el orden canónico en que el motor adquiere los bloqueos
// de fila.
func (r *Resolver) ResolveOrder(ctx context.Context, items []*entity.OrderItem) ([]OrderRequirement, error) {
	totals := make(map[string]decimal.Decimal)
	for _, it := range items {
		reqs, err := r.ResolveProduct(ctx, it.ProductID, it.Quantity)
		if err != nil {
			return nil, err
		}
		for _, req := range reqs {
			totals[req.IngredientID] = totals[req.IngredientID].Add(req.Total)
		}
	}
	out := make([]OrderRequirement, 0, len(totals))
	for id, total := range totals {
		out = append(out, OrderRequirement{IngredientID: id, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IngredientID < out[j].IngredientID })
	return out, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de lectura sobre product_ingredients (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// ListByProduct devuelve las entradas de receta de un producto.
// Producto sin receta → slice vacío.
func (r *RecipeRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.RecipeItem, error) {
	query := `
		SELECT product_id, ingredient_id, quantity_required
		FROM product_ingredients WHERE product_id = $1`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list recipe: %w", err)
	}
	defer rows.Close()
	var list []*entity.RecipeItem
	for rows.Next() {
		var item entity.RecipeItem
		if err := rows.Scan(&item.ProductID, &item.IngredientID, &item.QuantityRequired); err != nil {
			return nil, fmt.Errorf("scan recipe item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// ProductIDsByIngredients devuelve productos cuyas recetas usan alguno de los
// ingredientes dados (insumo del sync por lote).
func (r *RecipeRepo) ProductIDsByIngredients(ctx context.Context, ingredientIDs []string) ([]string, error) {
	if len(ingredientIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT DISTINCT product_id
		FROM product_ingredients WHERE ingredient_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ingredientIDs)
	if err != nil {
		return nil, fmt.Errorf("products by ingredients: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

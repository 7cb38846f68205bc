package repository

import (
	"context"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// RecipeRepository define el puerto de solo lectura sobre la configuración
// producto↔ingrediente (tabla product_ingredients, propiedad del catálogo).
type RecipeRepository interface {
	// ListByProduct devuelve las entradas de receta de un producto.
	// Producto sin receta → slice vacío (sin restricción de ingredientes).
	ListByProduct(ctx context.Context, productID string) ([]*entity.RecipeItem, error)
	// ProductIDsByIngredients devuelve los productos cuyas recetas usan
	// alguno de los ingredientes indicados (para el sync por lote).
	ProductIDsByIngredients(ctx context.Context, ingredientIDs []string) ([]string, error)
}

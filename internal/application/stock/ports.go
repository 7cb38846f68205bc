package stock

import (
	"context"

	"github.com/comandaplus/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de stock.
type TxRunner interface {
	// Run pasa los repos del ledger (reabastecimientos y ajustes manuales).
	Run(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		historyRepo repository.StockHistoryRepository,
	) error) error
	// RunOrder agrega los repos de pedido y receta (deducción/restauración:
	// la resolución de requerimientos y la escritura de stock ven el mismo
	// snapshot).
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		recipeRepo repository.RecipeRepository,
		ingredientRepo repository.IngredientRepository,
		historyRepo repository.StockHistoryRepository,
	) error) error
}

// LowStockNotifier recibe, ya con la transacción confirmada y fuera de los
// bloqueos de fila, los ingredientes que quedaron en o bajo su stock mínimo.
// La implementación no devuelve error: toda falla de entrega se registra y
// se absorbe.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, ingredientID string)
}

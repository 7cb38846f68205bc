package repository

import (
	"context"
	"time"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// StockHistoryRepository define el puerto de persistencia del historial de
// stock. Append-only: los registros nunca se actualizan ni se borran.
type StockHistoryRepository interface {
	Create(ctx context.Context, h *entity.StockHistory) error
	// ListByIngredient lista el historial más reciente primero (auditoría).
	ListByIngredient(ctx context.Context, ingredientID string, limit, offset int) ([]*entity.StockHistory, error)
	// ListByIngredientAsc devuelve el historial completo en orden de commit,
	// insumo del replay del ledger.
	ListByIngredientAsc(ctx context.Context, ingredientID string) ([]*entity.StockHistory, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.StockHistory, error)
	// DistinctIngredientIDsSince devuelve los ingredientes con movimientos
	// desde el instante dado (ventana del sync por lote).
	DistinctIngredientIDsSince(ctx context.Context, since time.Time) ([]string, error)
}

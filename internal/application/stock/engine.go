package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/domain"
	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
	"github.com/comandaplus/pos-api/pkg/logger"
)

// Engine es el único componente que muta el ledger de ingredientes.
// Toda mutación sigue el mismo protocolo: transacción, bloqueo de fila
// (SELECT FOR UPDATE) en orden canónico por ID de ingrediente, escritura del
// stock y registro en el historial; Commit o Rollback completo.
//
// Los métodos devuelven error; los call-sites del ciclo de pedidos lo
// registran y lo absorben: la contabilidad de ingredientes nunca veta ni
// deshace un pedido ya aceptado.
type Engine struct {
	txRunner TxRunner
	notifier LowStockNotifier
	log      *logger.Logger
}

// NewEngine construye el motor de stock.
func NewEngine(txRunner TxRunner, notifier LowStockNotifier, log *logger.Logger) *Engine {
	return &Engine{
		txRunner: txRunner,
		notifier: notifier,
		log:      log.Component("stock-engine"),
	}
}

// DeductForOrder descuenta del ledger los ingredientes que consume un pedido.
// El descuento puede dejar stock negativo: la validación ocurrió antes y de
// forma consultiva, y bloquear aquí abortaría un pedido ya aceptado y cobrado.
// Los ingredientes que quedan en o bajo su mínimo se entregan al notificador
// después del commit, fuera de la ventana de bloqueo.
func (e *Engine) DeductForOrder(ctx context.Context, orderID string) error {
	lowStock, err := e.applyOrder(ctx, orderID, entity.StockOpOrderConsumption)
	if err != nil {
		return fmt.Errorf("deduct order %s: %w", orderID, err)
	}
	for _, id := range lowStock {
		e.notifier.NotifyLowStock(ctx, id)
	}
	return nil
}

// RestoreForOrder devuelve al ledger los ingredientes de un pedido anulado.
// Simétrico a la deducción; el stock sube, así que no hay chequeo de mínimo.
func (e *Engine) RestoreForOrder(ctx context.Context, orderID string) error {
	if _, err := e.applyOrder(ctx, orderID, entity.StockOpOrderCancellation); err != nil {
		return fmt.Errorf("restore order %s: %w", orderID, err)
	}
	return nil
}

// applyOrder ejecuta la transacción de deducción (op consumo) o restauración
// (op anulación) y devuelve los ingredientes que quedaron en o bajo su
// mínimo (solo en deducción).
func (e *Engine) applyOrder(ctx context.Context, orderID, op string) ([]string, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	deduct := op == entity.StockOpOrderConsumption

	var lowStock []string
	err := e.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		recipeRepo repository.RecipeRepository,
		ingredientRepo repository.IngredientRepository,
		historyRepo repository.StockHistoryRepository,
	) error {
		items, err := orderRepo.ListItems(ctx, orderID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		// Agregar requerimientos y ordenarlos por ID de ingrediente: orden
		// canónico de adquisición de bloqueos entre transacciones concurrentes.
		reqs, err := NewResolver(recipeRepo).ResolveOrder(ctx, items)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, req := range reqs {
			ing, err := ingredientRepo.GetForUpdate(ctx, req.IngredientID)
			if err != nil {
				return err
			}
			if ing == nil {
				// Receta apunta a un ingrediente eliminado: sin restricción.
				e.log.Warn().Str("ingredient_id", req.IngredientID).Str("order_id", orderID).
					Msg("receta referencia un ingrediente inexistente; entrada omitida")
				continue
			}
			delta := req.Total.Neg()
			if !deduct {
				delta = req.Total
			}
			newStock := ing.CurrentStock.Add(delta)
			if err := ingredientRepo.UpdateStock(ctx, ing.ID, newStock); err != nil {
				return err
			}
			h := &entity.StockHistory{
				IngredientID:  ing.ID,
				Type:          op,
				Quantity:      delta,
				PreviousStock: ing.CurrentStock,
				NewStock:      newStock,
				OrderID:       orderID,
				CreatedAt:     now,
			}
			if err := historyRepo.Create(ctx, h); err != nil {
				return err
			}
			if deduct && newStock.LessThanOrEqual(ing.MinimumStock) {
				lowStock = append(lowStock, ing.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lowStock, nil
}

// Restock suma un reabastecimiento manual al ledger bajo el mismo protocolo
// bloqueado y devuelve el stock resultante. La cantidad debe ser positiva.
func (e *Engine) Restock(ctx context.Context, ingredientID string, quantity decimal.Decimal, actor string) (decimal.Decimal, error) {
	if ingredientID == "" || !quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	var newStock decimal.Decimal
	err := e.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		historyRepo repository.StockHistoryRepository,
	) error {
		ing, err := ingredientRepo.GetForUpdate(ctx, ingredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrIngredientNotFound
		}
		newStock = ing.CurrentStock.Add(quantity)
		if err := ingredientRepo.UpdateStock(ctx, ing.ID, newStock); err != nil {
			return err
		}
		return historyRepo.Create(ctx, &entity.StockHistory{
			IngredientID:  ing.ID,
			Type:          entity.StockOpManualRestock,
			Quantity:      quantity,
			PreviousStock: ing.CurrentStock,
			NewStock:      newStock,
			CreatedBy:     actor,
		})
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newStock, nil
}

// Adjust fija el stock en el valor de un conteo físico y registra el delta.
// Si el ajuste baja el stock hasta o bajo el mínimo, notifica post-commit.
func (e *Engine) Adjust(ctx context.Context, ingredientID string, counted decimal.Decimal, actor string) (decimal.Decimal, error) {
	if ingredientID == "" || counted.LessThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	var (
		newStock decimal.Decimal
		notify   bool
	)
	err := e.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		historyRepo repository.StockHistoryRepository,
	) error {
		ing, err := ingredientRepo.GetForUpdate(ctx, ingredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrIngredientNotFound
		}
		delta := counted.Sub(ing.CurrentStock)
		newStock = counted
		if err := ingredientRepo.UpdateStock(ctx, ing.ID, newStock); err != nil {
			return err
		}
		if err := historyRepo.Create(ctx, &entity.StockHistory{
			IngredientID:  ing.ID,
			Type:          entity.StockOpAdjustment,
			Quantity:      delta,
			PreviousStock: ing.CurrentStock,
			NewStock:      newStock,
			CreatedBy:     actor,
		}); err != nil {
			return err
		}
		notify = delta.IsNegative() && newStock.LessThanOrEqual(ing.MinimumStock)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	if notify {
		e.notifier.NotifyLowStock(ctx, ingredientID)
	}
	return newStock, nil
}

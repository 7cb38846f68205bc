package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/domain"
	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
	"github.com/comandaplus/pos-api/internal/domain/stock"
)

// AuditReport resultado de reproducir el historial de un ingrediente contra
// su valor vivo en el ledger.
type AuditReport struct {
	IngredientID   string
	IngredientName string
	LiveStock      decimal.Decimal
	ReplayedStock  decimal.Decimal
	Consistent     bool // replay == valor vivo
	ChainOK        bool // cada registro cumple new = previous + delta y encadena
	BrokenIndex    int  // primer eslabón roto (-1 si la cadena está bien)
	Entries        int
}

// AuditUseCase reproduce el historial append-only de un ingrediente y lo
// compara con el stock vivo. Solo lectura, pensado para administración.
type AuditUseCase struct {
	ingredientRepo repository.IngredientRepository
	historyRepo    repository.StockHistoryRepository
}

// NewAuditUseCase construye el caso de uso de auditoría del ledger.
func NewAuditUseCase(ingredientRepo repository.IngredientRepository, historyRepo repository.StockHistoryRepository) *AuditUseCase {
	return &AuditUseCase{ingredientRepo: ingredientRepo, historyRepo: historyRepo}
}

// AuditLedger reproduce el historial completo del ingrediente desde el
// previous_stock del primer registro y verifica la cadena registro a registro.
func (uc *AuditUseCase) AuditLedger(ctx context.Context, ingredientID string) (*AuditReport, error) {
	ing, err := uc.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrIngredientNotFound
	}
	entries, err := uc.historyRepo.ListByIngredientAsc(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	initial := decimal.Zero
	if len(entries) > 0 {
		initial = entries[0].PreviousStock
	}
	replayed := stock.Replay(initial, entries)
	chainOK, brokenIdx := stock.VerifyChain(entries)

	return &AuditReport{
		IngredientID:   ing.ID,
		IngredientName: ing.Name,
		LiveStock:      ing.CurrentStock,
		ReplayedStock:  replayed,
		Consistent:     replayed.Equal(ing.CurrentStock),
		ChainOK:        chainOK,
		BrokenIndex:    brokenIdx,
		Entries:        len(entries),
	}, nil
}

// OrderTrail devuelve los movimientos que un pedido dejó en el ledger, en
// orden de commit. Pedido sin movimientos (o inexistente: los pedidos son
// externos) → slice vacío. Es la lectura de reconciliación para los hooks
// que responden 202 tragándose la falla.
func (uc *AuditUseCase) OrderTrail(ctx context.Context, orderID string) ([]*entity.StockHistory, error) {
	return uc.historyRepo.ListByOrder(ctx, orderID)
}

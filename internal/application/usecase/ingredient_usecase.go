package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/application/dto"
	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/internal/domain"
	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
)

// IngredientUseCase administración de ingredientes (alta, consulta, edición,
// desactivación). El stock no se administra aquí: nace en cero y solo se
// mueve por las operaciones del motor; por eso el alta delega el stock
// inicial en un reabastecimiento.
type IngredientUseCase struct {
	repo        repository.IngredientRepository
	historyRepo repository.StockHistoryRepository
	engine      *stock.Engine
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(
	repo repository.IngredientRepository,
	historyRepo repository.StockHistoryRepository,
	engine *stock.Engine,
) *IngredientUseCase {
	return &IngredientUseCase{repo: repo, historyRepo: historyRepo, engine: engine}
}

func validUnit(u string) bool {
	switch u {
	case entity.UnitKilogram, entity.UnitGram, entity.UnitLiter, entity.UnitMilliliter, entity.UnitPiece:
		return true
	}
	return false
}

// Create da de alta un ingrediente. Nombre único con comparación normalizada
// ("Azúcar" y "azucar" son el mismo ingrediente). El stock inicial, si viene,
// se registra como primer reabastecimiento manual para que el historial
// reproduzca el ledger desde el origen.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !validUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock.IsNegative() || in.MinimumStock.IsNegative() ||
		in.MaximumStock.IsNegative() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	ing := &entity.Ingredient{
		Name:         name,
		Unit:         in.Unit,
		CurrentStock: decimal.Zero,
		MinimumStock: in.MinimumStock,
		MaximumStock: in.MaximumStock,
		UnitCost:     in.UnitCost,
		Supplier:     in.Supplier,
		Active:       true,
	}
	if err := uc.repo.Create(ctx, ing); err != nil {
		return nil, err
	}

	if in.InitialStock.GreaterThan(decimal.Zero) {
		newStock, err := uc.engine.Restock(ctx, ing.ID, in.InitialStock, in.CreatedBy)
		if err != nil {
			return nil, err
		}
		ing.CurrentStock = newStock
	}
	return toIngredientResponse(ing), nil
}

// GetByID obtiene un ingrediente. Devuelve nil, nil si no existe.
func (uc *IngredientUseCase) GetByID(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}
	return toIngredientResponse(ing), nil
}

// List lista ingredientes con paginación y marca de stock bajo.
func (uc *IngredientUseCase) List(ctx context.Context, includeInactive bool, limit, offset int) (*dto.IngredientListResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		items = append(items, *toIngredientResponse(ing))
	}
	return &dto.IngredientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita metadatos. Nunca toca el stock. Desactivar (Active=false)
// retira el ingrediente de la administración sin romper el historial.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		ing.Name = name
	}
	if in.Unit != nil {
		if !validUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		ing.Unit = *in.Unit
	}
	if in.MinimumStock != nil {
		if in.MinimumStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.MinimumStock = *in.MinimumStock
	}
	if in.MaximumStock != nil {
		if in.MaximumStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.MaximumStock = *in.MaximumStock
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.UnitCost = *in.UnitCost
	}
	if in.Supplier != nil {
		ing.Supplier = *in.Supplier
	}
	if in.Active != nil {
		ing.Active = *in.Active
	}
	if err := uc.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// History lista el historial de stock de un ingrediente, más reciente primero.
func (uc *IngredientUseCase) History(ctx context.Context, id string, limit, offset int) (*dto.StockHistoryListResponse, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrIngredientNotFound
	}
	list, err := uc.historyRepo.ListByIngredient(ctx, id, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockHistoryResponse, 0, len(list))
	for _, h := range list {
		items = append(items, dto.StockHistoryResponse{
			ID:            h.ID,
			IngredientID:  h.IngredientID,
			Type:          h.Type,
			Quantity:      h.Quantity,
			PreviousStock: h.PreviousStock,
			NewStock:      h.NewStock,
			OrderID:       h.OrderID,
			CreatedBy:     h.CreatedBy,
			CreatedAt:     h.CreatedAt,
		})
	}
	return &dto.StockHistoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toIngredientResponse(ing *entity.Ingredient) *dto.IngredientResponse {
	if ing == nil {
		return nil
	}
	return &dto.IngredientResponse{
		ID:           ing.ID,
		Name:         ing.Name,
		Unit:         ing.Unit,
		CurrentStock: ing.CurrentStock,
		MinimumStock: ing.MinimumStock,
		MaximumStock: ing.MaximumStock,
		UnitCost:     ing.UnitCost,
		Supplier:     ing.Supplier,
		Active:       ing.Active,
		LowStock:     ing.IsLowStock(),
		CreatedAt:    ing.CreatedAt,
		UpdatedAt:    ing.UpdatedAt,
	}
}

package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para ingredientes
// (el Stock Ledger). GetForUpdate y UpdateStock solo deben usarse dentro de
// una transacción; toda mutación de CurrentStock pasa por ellos.
type IngredientRepository interface {
	Create(ctx context.Context, ing *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	// GetByName busca por nombre con comparación normalizada (sin tildes,
	// sin mayúsculas). Devuelve nil, nil si no existe.
	GetByName(ctx context.Context, name string) (*entity.Ingredient, error)
	List(ctx context.Context, includeInactive bool, limit, offset int) ([]*entity.Ingredient, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Ingredient, error)
	// Update actualiza metadatos (nombre, unidad, umbrales, costo, proveedor,
	// activo). Nunca toca CurrentStock.
	Update(ctx context.Context, ing *entity.Ingredient) error
	// GetForUpdate bloquea la fila del ingrediente (SELECT FOR UPDATE).
	// Devuelve nil, nil si el ingrediente no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error)
	// UpdateStock escribe CurrentStock bajo el bloqueo ya adquirido.
	UpdateStock(ctx context.Context, id string, newStock decimal.Decimal) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/comandaplus/pos-api/internal/domain"
	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
	"github.com/comandaplus/pos-api/pkg/normalize"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, name, unit, current_stock, minimum_stock, maximum_stock, unit_cost, supplier, active, created_at, updated_at`

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador de ingredientes. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	var supplier *string
	err := row.Scan(
		&ing.ID, &ing.Name, &ing.Unit, &ing.CurrentStock, &ing.MinimumStock,
		&ing.MaximumStock, &ing.UnitCost, &supplier, &ing.Active,
		&ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplier != nil {
		ing.Supplier = *supplier
	}
	return &ing, nil
}

// Create persiste un ingrediente nuevo. El nombre normalizado (sin tildes,
// minúsculas) respalda el constraint de unicidad.
func (r *IngredientRepo) Create(ctx context.Context, ing *entity.Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	now := time.Now()
	if ing.CreatedAt.IsZero() {
		ing.CreatedAt = now
	}
	ing.UpdatedAt = now
	query := `
		INSERT INTO ingredients (id, name, name_normalized, unit, current_stock, minimum_stock, maximum_stock, unit_cost, supplier, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		ing.ID, ing.Name, normalize.Name(ing.Name), ing.Unit, ing.CurrentStock,
		ing.MinimumStock, ing.MaximumStock, ing.UnitCost, nullIfEmpty(ing.Supplier),
		ing.Active, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID. Devuelve nil, nil si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	ing, err := scanIngredient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return ing, nil
}

// GetByName busca por nombre con comparación normalizada. Devuelve nil, nil si no existe.
func (r *IngredientRepo) GetByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE name_normalized = $1`
	ing, err := scanIngredient(r.q.QueryRow(ctx, query, normalize.Name(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient by name: %w", err)
	}
	return ing, nil
}

// List lista ingredientes con paginación, opcionalmente incluyendo inactivos.
func (r *IngredientRepo) List(ctx context.Context, includeInactive bool, limit, offset int) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients`
	if !includeInactive {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

// ListByIDs obtiene los ingredientes cuyo ID está en el conjunto (sin orden garantizado).
func (r *IngredientRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list ingredients by ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

// Update actualiza metadatos del ingrediente. Nunca toca current_stock:
// el stock solo se mueve por el motor (GetForUpdate + UpdateStock).
func (r *IngredientRepo) Update(ctx context.Context, ing *entity.Ingredient) error {
	ing.UpdatedAt = time.Now()
	query := `
		UPDATE ingredients
		SET name = $2, name_normalized = $3, unit = $4, minimum_stock = $5, maximum_stock = $6, unit_cost = $7, supplier = $8, active = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		ing.ID, ing.Name, normalize.Name(ing.Name), ing.Unit, ing.MinimumStock,
		ing.MaximumStock, ing.UnitCost, nullIfEmpty(ing.Supplier), ing.Active, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

// GetForUpdate obtiene el ingrediente bloqueando la fila (SELECT FOR UPDATE).
// Devuelve nil, nil si no existe. Solo tiene sentido dentro de una transacción.
func (r *IngredientRepo) GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	ing, err := scanIngredient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient for update: %w", err)
	}
	return ing, nil
}

// UpdateStock escribe current_stock bajo el bloqueo ya adquirido con GetForUpdate.
func (r *IngredientRepo) UpdateStock(ctx context.Context, id string, newStock decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE ingredients SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, newStock,
	)
	if err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	return nil
}

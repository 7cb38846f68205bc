package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

const stockHistoryColumns = `id, ingredient_id, type, quantity, previous_stock, new_stock, order_id, created_by, created_at`

// StockHistoryRepo implementación del puerto StockHistoryRepository sobre
// PostgreSQL (usable con pool o tx). La tabla es append-only: no hay Update
// ni Delete.
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador del historial. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

func scanStockHistory(row pgx.Row) (*entity.StockHistory, error) {
	var h entity.StockHistory
	var orderID, createdBy *string
	err := row.Scan(
		&h.ID, &h.IngredientID, &h.Type, &h.Quantity, &h.PreviousStock,
		&h.NewStock, &orderID, &createdBy, &h.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if orderID != nil {
		h.OrderID = *orderID
	}
	if createdBy != nil {
		h.CreatedBy = *createdBy
	}
	return &h, nil
}

// Create persiste un registro de historial.
func (r *StockHistoryRepo) Create(ctx context.Context, h *entity.StockHistory) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO stock_history (id, ingredient_id, type, quantity, previous_stock, new_stock, order_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.IngredientID, h.Type, h.Quantity, h.PreviousStock, h.NewStock,
		nullIfEmpty(h.OrderID), nullIfEmpty(h.CreatedBy), h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock history: %w", err)
	}
	return nil
}

// ListByIngredient lista el historial de un ingrediente, más reciente primero.
func (r *StockHistoryRepo) ListByIngredient(ctx context.Context, ingredientID string, limit, offset int) ([]*entity.StockHistory, error) {
	query := `SELECT ` + stockHistoryColumns + `
		FROM stock_history WHERE ingredient_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, ingredientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockHistory
	for rows.Next() {
		h, err := scanStockHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// ListByIngredientAsc devuelve el historial completo en orden de commit
// (insumo del replay del ledger).
func (r *StockHistoryRepo) ListByIngredientAsc(ctx context.Context, ingredientID string) ([]*entity.StockHistory, error) {
	query := `SELECT ` + stockHistoryColumns + `
		FROM stock_history WHERE ingredient_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("list stock history asc: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockHistory
	for rows.Next() {
		h, err := scanStockHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// ListByOrder lista los movimientos asociados a un pedido.
func (r *StockHistoryRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.StockHistory, error) {
	query := `SELECT ` + stockHistoryColumns + `
		FROM stock_history WHERE order_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list stock history by order: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockHistory
	for rows.Next() {
		h, err := scanStockHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// DistinctIngredientIDsSince devuelve los ingredientes con movimientos desde
// el instante dado (ventana del sync por lote).
func (r *StockHistoryRepo) DistinctIngredientIDsSince(ctx context.Context, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT ingredient_id
		FROM stock_history WHERE created_at >= $1`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("distinct ingredients since: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan ingredient id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

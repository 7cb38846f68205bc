package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest body para POST /api/ingredients.
// El ledger nace en cero; InitialStock (opcional) se registra como un
// reabastecimiento manual para que el historial reproduzca el stock desde el
// primer día.
type CreateIngredientRequest struct {
	Name         string          `json:"name"`
	Unit         string          `json:"unit"` // kg, g, l, ml, und
	InitialStock decimal.Decimal `json:"initial_stock,omitempty"`
	MinimumStock decimal.Decimal `json:"minimum_stock,omitempty"`
	MaximumStock decimal.Decimal `json:"maximum_stock,omitempty"`
	UnitCost     decimal.Decimal `json:"unit_cost,omitempty"`
	Supplier     string          `json:"supplier,omitempty"`
	CreatedBy    string          `json:"created_by,omitempty"` // actor del reabastecimiento inicial
}

// UpdateIngredientRequest body para PUT /api/ingredients/:id. Campos nil no se tocan.
// No incluye el stock: el stock solo se mueve por las operaciones del motor.
type UpdateIngredientRequest struct {
	Name         *string          `json:"name,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	MinimumStock *decimal.Decimal `json:"minimum_stock,omitempty"`
	MaximumStock *decimal.Decimal `json:"maximum_stock,omitempty"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	Active       *bool            `json:"active,omitempty"`
}

// IngredientResponse representación de un ingrediente en respuestas.
type IngredientResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	MaximumStock decimal.Decimal `json:"maximum_stock"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Supplier     string          `json:"supplier,omitempty"`
	Active       bool            `json:"active"`
	LowStock     bool            `json:"low_stock"` // current <= minimum
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IngredientListResponse página de ingredientes.
type IngredientListResponse struct {
	Items []IngredientResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// RestockRequest body para POST /api/ingredients/:id/restock.
type RestockRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedBy string          `json:"created_by,omitempty"`
}

// AdjustStockRequest body para POST /api/ingredients/:id/adjust.
// Quantity es el valor contado físicamente, no un delta.
type AdjustStockRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedBy string          `json:"created_by,omitempty"`
}

// StockOperationResponse resultado de un reabastecimiento o ajuste.
type StockOperationResponse struct {
	IngredientID string          `json:"ingredient_id"`
	NewStock     decimal.Decimal `json:"new_stock"`
}

// StockHistoryResponse un registro del historial de stock.
type StockHistoryResponse struct {
	ID            string          `json:"id"`
	IngredientID  string          `json:"ingredient_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
	OrderID       string          `json:"order_id,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// StockHistoryListResponse página del historial de un ingrediente.
type StockHistoryListResponse struct {
	Items []StockHistoryResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// LedgerAuditResponse resultado de reproducir el historial contra el valor vivo.
type LedgerAuditResponse struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	LiveStock      decimal.Decimal `json:"live_stock"`
	ReplayedStock  decimal.Decimal `json:"replayed_stock"`
	Consistent     bool            `json:"consistent"`
	ChainOK        bool            `json:"chain_ok"`
	BrokenIndex    int             `json:"broken_index"` // -1 si la cadena está bien
	Entries        int             `json:"entries"`
}

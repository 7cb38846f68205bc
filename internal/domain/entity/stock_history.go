package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación del historial de stock.
const (
	StockOpOrderConsumption  = "order_consumption"  // descuento por pedido
	StockOpOrderCancellation = "order_cancellation" // restauración por anulación
	StockOpManualRestock     = "manual_restock"     // reabastecimiento manual
	StockOpAdjustment        = "adjustment"         // ajuste de conteo físico
)

// StockHistory es un registro inmutable del libro de movimientos de un
// ingrediente. Convención de signo: consumo negativo, restauración y
// reabastecimiento positivo. Invariante: NewStock = PreviousStock + Quantity.
// Nunca se actualiza ni se borra; el historial reproduce el ledger.
type StockHistory struct {
	ID            string
	IngredientID  string
	Type          string
	Quantity      decimal.Decimal // delta con signo
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	OrderID       string // vacío si no aplica (restock/ajuste)
	CreatedBy     string // UserID del actor, vacío en operaciones de pedido
	CreatedAt     time.Time
}

package dto

import "github.com/shopspring/decimal"

// ValidateStockItem una línea (producto, cantidad) del pedido candidato.
type ValidateStockItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ValidateStockRequest body para POST /api/stock/validate.
type ValidateStockRequest struct {
	Items []ValidateStockItem `json:"items"`
}

// ShortageDetailResponse faltante de un ingrediente para una línea del pedido.
type ShortageDetailResponse struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Unit           string          `json:"unit"`
	Have           decimal.Decimal `json:"have"`
	Need           decimal.Decimal `json:"need"`
	Shortage       decimal.Decimal `json:"shortage"`
}

// StockValidationResponse veredicto consultivo para la UI de toma de pedidos.
// El resultado puede quedar desactualizado para cuando el pedido se confirme;
// es un aviso, no una reserva.
type StockValidationResponse struct {
	Fulfillable bool                     `json:"fulfillable"`
	Missing     []ShortageDetailResponse `json:"missing,omitempty"`
	MaxPortions *int64                   `json:"max_portions,omitempty"`
}

// OrderHistoryResponse movimientos que un pedido dejó en el ledger. Vacío si
// el pedido no tocó stock (o la deducción falló y quedó pendiente de
// reconciliar).
type OrderHistoryResponse struct {
	OrderID string                 `json:"order_id"`
	Items   []StockHistoryResponse `json:"items"`
}

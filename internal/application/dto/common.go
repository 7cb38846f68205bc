package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AcceptedResponse cuerpo de los hooks del ciclo de pedidos (202). El pedido
// sigue su curso aunque la contabilidad de ingredientes falle.
type AcceptedResponse struct {
	Status  string `json:"status"` // accepted
	OrderID string `json:"order_id"`
}

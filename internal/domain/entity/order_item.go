package entity

// OrderItem es una línea de pedido (entidad del subsistema de pedidos).
// Este núcleo la consume solo como par (producto, cantidad) con el ID del
// pedido para correlacionar el historial de stock.
type OrderItem struct {
	OrderID   string
	ProductID string
	Quantity  int
}

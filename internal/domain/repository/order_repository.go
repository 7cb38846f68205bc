package repository

import (
	"context"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// OrderRepository define el puerto de lectura sobre las líneas de pedido
// (propiedad del subsistema de pedidos). Se usa dentro de la transacción del
// motor de stock para leer los pares (producto, cantidad) de un pedido.
type OrderRepository interface {
	ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
}

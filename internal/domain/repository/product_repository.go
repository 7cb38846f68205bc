package repository

import (
	"context"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura sobre el catálogo de
// productos. Este núcleo solo escribe la bandera derivada Available.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	UpdateAvailability(ctx context.Context, productID string, available bool) error
}

package repository

import (
	"context"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura sobre usuarios del personal
// (propiedad del subsistema de auth). Aquí solo se enumeran destinatarios
// de alertas.
type UserRepository interface {
	// ListActiveByRoles devuelve los usuarios activos cuyo rol está en el
	// conjunto indicado.
	ListActiveByRoles(ctx context.Context, roles []string) ([]*entity.User, error)
}

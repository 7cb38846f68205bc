package postgres

import (
	"context"
	"fmt"

	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura sobre usuarios del personal (usable con pool o tx).
// La administración de usuarios vive en el servicio de auth; aquí solo se
// enumeran destinatarios de alertas.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// ListActiveByRoles devuelve los usuarios activos cuyo rol está en el conjunto.
func (r *UserRepo) ListActiveByRoles(ctx context.Context, roles []string) ([]*entity.User, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, email, role, status
		FROM users WHERE status = $1 AND role = ANY($2)
		ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, entity.UserStatusActive, roles)
	if err != nil {
		return nil, fmt.Errorf("list users by roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

package entity

import "time"

// Roles del personal del restaurante.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMesero  = "mesero"
	RoleCajero  = "cajero"
)

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del personal (propiedad del subsistema de
// auth/usuarios; aquí solo se lee para el fan-out de notificaciones).
type User struct {
	ID        string
	Email     string
	Name      string
	Role      string // admin, manager, mesero, cajero
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

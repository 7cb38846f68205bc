package entity

import "time"

// Tipos de notificación.
const (
	NotificationTypeLowStock = "low_stock"
)

// Notification representa una notificación interna para un usuario del
// personal. ReferenceID correlaciona con la entidad origen (el ingrediente
// en alertas de stock bajo) y permite suprimir repeticiones.
type Notification struct {
	ID          string
	UserID      string
	Type        string
	Title       string
	Message     string
	ReferenceID string // vacío si no aplica
	Read        bool
	CreatedAt   time.Time
}

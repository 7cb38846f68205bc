package repository

import (
	"context"
	"time"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia de notificaciones.
// El listado para el usuario final vive en la API genérica de notificaciones,
// externa a este núcleo; aquí solo se crean y se consulta la supresión.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// ExistsRecentByReference indica si ya existe una notificación del mismo
	// tipo para el usuario y la referencia desde el instante dado (ventana
	// de supresión de alertas repetidas).
	ExistsRecentByReference(ctx context.Context, userID, notifType, referenceID string, since time.Time) (bool, error)
}

// NotificationPreferenceRepository define el puerto de lectura de
// preferencias de notificación por usuario y tipo.
type NotificationPreferenceRepository interface {
	// Get devuelve nil, nil si el usuario no tiene fila para el tipo
	// (interpretado como habilitado por defecto).
	Get(ctx context.Context, userID, notifType string) (*entity.NotificationPreference, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo persistencia de notificaciones (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, reference_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.UserID, n.Type, n.Title, n.Message, nullIfEmpty(n.ReferenceID), n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ExistsRecentByReference indica si ya existe una notificación del mismo tipo
// para el usuario y la referencia desde el instante dado (ventana de
// supresión de alertas repetidas).
func (r *NotificationRepo) ExistsRecentByReference(ctx context.Context, userID, notifType, referenceID string, since time.Time) (bool, error) {
	query := `
		SELECT 1 FROM notifications
		WHERE user_id = $1 AND type = $2 AND reference_id = $3 AND created_at >= $4
		LIMIT 1`
	var one int
	err := r.q.QueryRow(ctx, query, userID, notifType, referenceID, since).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check recent notification: %w", err)
	}
	return true, nil
}

var _ repository.NotificationPreferenceRepository = (*NotificationPreferenceRepo)(nil)

// NotificationPreferenceRepo lectura de preferencias de notificación (usable con pool o tx).
type NotificationPreferenceRepo struct {
	q Querier
}

// NewNotificationPreferenceRepository construye el adaptador de preferencias. Pasar pool o tx (Querier).
func NewNotificationPreferenceRepository(q Querier) *NotificationPreferenceRepo {
	return &NotificationPreferenceRepo{q: q}
}

// Get obtiene la preferencia de un usuario para un tipo de notificación.
// Devuelve nil, nil si no hay fila (habilitado por defecto).
func (r *NotificationPreferenceRepo) Get(ctx context.Context, userID, notifType string) (*entity.NotificationPreference, error) {
	query := `
		SELECT user_id, type, enabled, quiet_hours_start, quiet_hours_end, timezone
		FROM notification_preferences WHERE user_id = $1 AND type = $2`
	var p entity.NotificationPreference
	var start, end, tz *string
	err := r.q.QueryRow(ctx, query, userID, notifType).Scan(
		&p.UserID, &p.Type, &p.Enabled, &start, &end, &tz,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification preference: %w", err)
	}
	if start != nil {
		p.QuietHoursStart = *start
	}
	if end != nil {
		p.QuietHoursEnd = *end
	}
	if tz != nil {
		p.Timezone = *tz
	}
	return &p, nil
}

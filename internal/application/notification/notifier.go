package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/internal/domain/entity"
	"github.com/comandaplus/pos-api/internal/domain/repository"
	"github.com/comandaplus/pos-api/pkg/config"
	"github.com/comandaplus/pos-api/pkg/logger"
)

var _ stock.LowStockNotifier = (*Notifier)(nil)

// Notifier reparte alertas de stock bajo al personal elegible. Cada usuario
// pasa dos filtros independientes (tipo habilitado y horario silencioso) más
// la supresión de repetidos por usuario+ingrediente. Las fallas se aíslan por
// destinatario: un insert fallido no detiene el reparto a los demás.
type Notifier struct {
	ingredientRepo repository.IngredientRepository
	userRepo       repository.UserRepository
	notifRepo      repository.NotificationRepository
	prefRepo       repository.NotificationPreferenceRepository
	roles          []string
	throttle       time.Duration
	defaultTZ      string
	log            *logger.Logger
}

// NewNotifier construye el notificador con los roles, la ventana de
// supresión y la zona por defecto de la configuración.
func NewNotifier(
	ingredientRepo repository.IngredientRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	prefRepo repository.NotificationPreferenceRepository,
	cfg config.StockConfig,
	log *logger.Logger,
) *Notifier {
	return &Notifier{
		ingredientRepo: ingredientRepo,
		userRepo:       userRepo,
		notifRepo:      notifRepo,
		prefRepo:       prefRepo,
		roles:          cfg.AlertRoles,
		throttle:       time.Duration(cfg.AlertThrottleMinutes) * time.Minute,
		defaultTZ:      cfg.DefaultTimezone,
		log:            log.Component("notifier"),
	}
}

// NotifyLowStock reparte la alerta de un ingrediente en o bajo su mínimo.
// Nunca devuelve error: toda falla se registra y se absorbe.
func (n *Notifier) NotifyLowStock(ctx context.Context, ingredientID string) {
	ing, err := n.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		n.log.Error().Err(err).Str("ingredient_id", ingredientID).
			Msg("alerta de stock bajo: no se pudo leer el ingrediente")
		return
	}
	if ing == nil {
		n.log.Warn().Str("ingredient_id", ingredientID).
			Msg("alerta de stock bajo para un ingrediente inexistente")
		return
	}

	users, err := n.userRepo.ListActiveByRoles(ctx, n.roles)
	if err != nil {
		n.log.Error().Err(err).Str("ingredient_id", ingredientID).
			Msg("alerta de stock bajo: no se pudieron enumerar destinatarios")
		return
	}
	if len(users) == 0 {
		return
	}

	now := time.Now()
	title := "Stock bajo: " + ing.Name
	message := fmt.Sprintf("El ingrediente %s quedó en %s %s (mínimo %s %s).",
		ing.Name, ing.CurrentStock.String(), ing.Unit, ing.MinimumStock.String(), ing.Unit)

	for _, u := range users {
		n.notifyUser(ctx, u, ing, title, message, now)
	}
}

// notifyUser aplica los filtros de un destinatario y crea la notificación.
func (n *Notifier) notifyUser(ctx context.Context, user *entity.User, ing *entity.Ingredient, title, message string, now time.Time) {
	// Filtro 1: preferencia de tipo. Sin fila → habilitado; error de lectura
	// → enviar (una alerta perdida es peor que una repetida).
	pref, err := n.prefRepo.Get(ctx, user.ID, entity.NotificationTypeLowStock)
	if err != nil {
		n.log.Warn().Err(err).Str("user_id", user.ID).
			Msg("preferencia ilegible; se envía por defecto")
		pref = nil
	}
	if pref != nil && !pref.Enabled {
		return
	}

	// Filtro 2: horario silencioso en la zona del usuario.
	if InQuietHours(pref, now, n.defaultTZ) {
		return
	}

	// Supresión de repetidos: misma alerta usuario+ingrediente dentro de la
	// ventana. Error de lectura → enviar.
	if n.throttle > 0 {
		recent, err := n.notifRepo.ExistsRecentByReference(ctx, user.ID, entity.NotificationTypeLowStock, ing.ID, now.Add(-n.throttle))
		if err != nil {
			n.log.Warn().Err(err).Str("user_id", user.ID).Str("ingredient_id", ing.ID).
				Msg("supresión ilegible; se envía por defecto")
		} else if recent {
			return
		}
	}

	err = n.notifRepo.Create(ctx, &entity.Notification{
		UserID:      user.ID,
		Type:        entity.NotificationTypeLowStock,
		Title:       title,
		Message:     message,
		ReferenceID: ing.ID,
		CreatedAt:   now,
	})
	if err != nil {
		n.log.Error().Err(err).Str("user_id", user.ID).Str("ingredient_id", ing.ID).
			Msg("no se pudo crear la notificación")
	}
}

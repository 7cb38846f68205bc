package entity

// NotificationPreference es la preferencia de un usuario para un tipo de
// notificación. Sin fila registrada el tipo se considera habilitado.
// QuietHoursStart/End en formato "HH:MM"; start > end indica ventana que
// cruza medianoche (activa cuando now >= start O now < end).
type NotificationPreference struct {
	UserID          string
	Type            string
	Enabled         bool
	QuietHoursStart string // vacío = sin horario silencioso
	QuietHoursEnd   string
	Timezone        string // zona IANA, ej. America/Bogota
}

// HasQuietHours indica si la preferencia define una ventana de silencio.
func (p *NotificationPreference) HasQuietHours() bool {
	return p.QuietHoursStart != "" && p.QuietHoursEnd != ""
}

package notification

import (
	"time"

	"github.com/comandaplus/pos-api/internal/domain/entity"
)

// parseClock convierte "HH:MM" a minutos desde medianoche.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// inQuietWindow evalúa la ventana [start, end) en minutos desde medianoche.
// start > end cruza medianoche: activa cuando now >= start O now < end.
// start == end es ventana vacía: nunca suprime.
func inQuietWindow(nowMin, startMin, endMin int) bool {
	if startMin == endMin {
		return false
	}
	if startMin < endMin {
		return nowMin >= startMin && nowMin < endMin
	}
	return nowMin >= startMin || nowMin < endMin
}

// InQuietHours indica si el instante cae dentro del horario silencioso de la
// preferencia, calculado en su zona horaria (o defaultTZ si no define una).
// Formato inválido o zona desconocida → false: ante la duda se envía, una
// alerta de más es mejor que una alerta perdida.
func InQuietHours(pref *entity.NotificationPreference, now time.Time, defaultTZ string) bool {
	if pref == nil || !pref.HasQuietHours() {
		return false
	}
	startMin, err := parseClock(pref.QuietHoursStart)
	if err != nil {
		return false
	}
	endMin, err := parseClock(pref.QuietHoursEnd)
	if err != nil {
		return false
	}
	tz := pref.Timezone
	if tz == "" {
		tz = defaultTZ
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return false
	}
	local := now.In(loc)
	return inQuietWindow(local.Hour()*60+local.Minute(), startMin, endMin)
}

// Package calendar concentra la aritmética de día calendario local del libro
// diario: la clave YYYY-MM-DD, la comparación de timestamps contra una clave y
// el cálculo de la próxima medianoche para el scheduler de cierre.
package calendar

import (
	"strings"
	"time"
)

// Layout de la clave de día calendario (ISO, truncado a día).
const DayKeyLayout = "2006-01-02"

// DayKey devuelve la clave de día calendario local de t (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// SameDay indica si el timestamp t cae en el día identificado por key.
// La comparación es por prefijo sobre la representación ISO, igual que el
// matching de createdAt contra currentDate en el snapshot persistido.
func SameDay(t time.Time, key string) bool {
	if key == "" {
		return false
	}
	return strings.HasPrefix(t.Format(time.RFC3339), key)
}

// NextMidnight devuelve la medianoche local inmediatamente posterior a now.
func NextMidnight(now time.Time) time.Time {
	d := now.AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain/calendar"
)

func TestDayKey_FormatoISO(t *testing.T) {
	ts := time.Date(2024, 1, 3, 15, 4, 5, 0, time.Local)
	assert.Equal(t, "2024-01-03", calendar.DayKey(ts))
}

func TestSameDay_ComparaPorPrefijo(t *testing.T) {
	ts := time.Date(2024, 1, 3, 23, 59, 59, 0, time.Local)

	assert.True(t, calendar.SameDay(ts, "2024-01-03"))
	assert.False(t, calendar.SameDay(ts, "2024-01-04"))
	assert.False(t, calendar.SameDay(ts, ""), "clave vacía nunca matchea")
}

func TestNextMidnight_DiaSiguiente(t *testing.T) {
	now := time.Date(2024, 1, 3, 18, 30, 0, 0, time.Local)
	next := calendar.NextMidnight(now)

	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.Local), next)
}

// TestNextMidnight_CruzaMesYAno valida los bordes de mes y de año; el cálculo
// delega en AddDate, que normaliza el calendario.
func TestNextMidnight_CruzaMesYAno(t *testing.T) {
	finDeMes := time.Date(2024, 1, 31, 23, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), calendar.NextMidnight(finDeMes))

	finDeAno := time.Date(2024, 12, 31, 23, 59, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), calendar.NextMidnight(finDeAno))
}

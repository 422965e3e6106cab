package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

func mustHours(t *testing.T, open, close types.TimeString, overnight bool) *OperatingHours {
	t.Helper()
	h, err := NewOperatingHours(1, time.Monday, open, close, overnight)
	require.NoError(t, err)
	return h
}

func TestNewOperatingHours_RejectsInvertedRange(t *testing.T) {
	_, err := NewOperatingHours(1, time.Monday, "22:00", "09:00", false)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = NewOperatingHours(1, time.Monday, "09:00", "09:00", false)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Ночной режим допускает закрытие "раньше" открытия
	_, err = NewOperatingHours(1, time.Monday, "22:00", "02:00", true)
	assert.NoError(t, err)
}

func TestNewOperatingHours_RejectsInvalidRestaurantID(t *testing.T) {
	_, err := NewOperatingHours(0, time.Monday, "09:00", "22:00", false)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestIsWithinOperatingHours_Boundaries(t *testing.T) {
	h := mustHours(t, "09:00", "22:00", false)

	// Открытие включительно, закрытие исключительно
	assert.True(t, h.IsWithinOperatingHours("09:00"))
	assert.True(t, h.IsWithinOperatingHours("21:59"))
	assert.False(t, h.IsWithinOperatingHours("22:00"))
	assert.False(t, h.IsWithinOperatingHours("08:59"))
}

func TestIsWithinOperatingHours_Overnight(t *testing.T) {
	h := mustHours(t, "22:00", "02:00", true)

	assert.True(t, h.IsWithinOperatingHours("23:00"))
	assert.True(t, h.IsWithinOperatingHours("01:00"))
	assert.True(t, h.IsWithinOperatingHours("22:00"))
	assert.False(t, h.IsWithinOperatingHours("02:00"))
	assert.False(t, h.IsWithinOperatingHours("12:00"))
	assert.False(t, h.IsWithinOperatingHours("21:00"))
}

func TestIsWithinOperatingHours_ClosedDay(t *testing.T) {
	h, err := NewClosedDay(1, time.Sunday)
	require.NoError(t, err)

	assert.False(t, h.IsWithinOperatingHours("12:00"))
	assert.False(t, h.IsWithinOperatingHours("00:00"))

	var absent *OperatingHours
	assert.False(t, absent.IsWithinOperatingHours("12:00"))
}

func TestFitsReservationWindow_NonOvernight(t *testing.T) {
	h := mustHours(t, "09:00", "22:00", false)

	// 18:00 + 3ч = 21:00, помещается
	assert.True(t, h.FitsReservationWindow("18:00", 180))
	// 19:00 + 3ч = 22:00, ровно до закрытия
	assert.True(t, h.FitsReservationWindow("19:00", 180))
	// 21:30 + 3ч = 00:30, выходит за закрытие
	assert.False(t, h.FitsReservationWindow("21:30", 180))
	// Начало вне окна
	assert.False(t, h.FitsReservationWindow("08:00", 180))
	assert.False(t, h.FitsReservationWindow("22:00", 180))
}

func TestFitsReservationWindow_Overnight(t *testing.T) {
	wide := mustHours(t, "22:00", "04:00", true)
	narrow := mustHours(t, "22:00", "02:00", true)

	// 23:30 + 3ч = 02:30 следующего дня
	assert.True(t, wide.FitsReservationWindow("23:30", 180))
	assert.False(t, narrow.FitsReservationWindow("23:30", 180))

	// Старт после полуночи внутри окна
	assert.True(t, wide.FitsReservationWindow("01:00", 180))
	assert.False(t, narrow.FitsReservationWindow("01:00", 180))

	// Ровно в открытие
	assert.True(t, wide.FitsReservationWindow("22:00", 180))
}

func TestUpdateHours_AndSetClosed(t *testing.T) {
	h := mustHours(t, "09:00", "22:00", false)

	require.NoError(t, h.UpdateHours("10:00", "23:00", false))
	assert.Equal(t, "10:00", h.OpenTime.String())
	assert.True(t, h.IsOpen)

	err := h.UpdateHours("23:00", "10:00", false)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	h.SetClosed()
	assert.False(t, h.IsOpen)
	assert.False(t, h.IsOvernight)
	assert.Equal(t, "00:00", h.OpenTime.String())
	assert.False(t, h.IsWithinOperatingHours("12:00"))
}

func TestWindowMinutes(t *testing.T) {
	assert.Equal(t, 13*60, mustHours(t, "09:00", "22:00", false).WindowMinutes())
	assert.Equal(t, 4*60, mustHours(t, "22:00", "02:00", true).WindowMinutes())

	closed, err := NewClosedDay(1, time.Monday)
	require.NoError(t, err)
	assert.Equal(t, 0, closed.WindowMinutes())
}

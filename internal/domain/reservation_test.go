package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow      = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	testLeadTime = time.Hour
	testDuration = 3 * time.Hour
)

func newTestReservation(t *testing.T, start time.Time) *Reservation {
	t.Helper()
	r, err := NewReservation(1, 1, 1, start, 2, "", testNow, testLeadTime, testDuration)
	require.NoError(t, err)
	return r
}

func TestNewReservation_DerivesEndTime(t *testing.T) {
	start := testNow.Add(4 * time.Hour)
	r := newTestReservation(t, start)

	assert.Equal(t, start.Add(3*time.Hour), r.EndTime)
	assert.Equal(t, ReservationStatusConfirmed, r.Status)
	assert.Zero(t, r.ID)
}

func TestNewReservation_LeadTime(t *testing.T) {
	// Ровно через час - недостаточно, нужен строго больший зазор
	_, err := NewReservation(1, 1, 1, testNow.Add(time.Hour), 2, "", testNow, testLeadTime, testDuration)
	assert.ErrorIs(t, err, ErrInsufficientLeadTime)

	_, err = NewReservation(1, 1, 1, testNow.Add(30*time.Minute), 2, "", testNow, testLeadTime, testDuration)
	assert.ErrorIs(t, err, ErrInsufficientLeadTime)

	_, err = NewReservation(1, 1, 1, testNow.Add(time.Hour+time.Minute), 2, "", testNow, testLeadTime, testDuration)
	assert.NoError(t, err)
}

func TestNewReservation_Invariants(t *testing.T) {
	start := testNow.Add(4 * time.Hour)

	_, err := NewReservation(0, 1, 1, start, 2, "", testNow, testLeadTime, testDuration)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewReservation(1, -5, 1, start, 2, "", testNow, testLeadTime, testDuration)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewReservation(1, 1, 0, start, 2, "", testNow, testLeadTime, testDuration)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewReservation(1, 1, 1, start, 0, "", testNow, testLeadTime, testDuration)
	assert.ErrorIs(t, err, ErrInvalidPartySize)
}

func TestReservation_ConflictsWith(t *testing.T) {
	start := testNow.Add(6 * time.Hour) // 18:00
	r := newTestReservation(t, start)   // 18:00-21:00

	// Пересечение внутри окна
	assert.True(t, r.ConflictsWith(start.Add(time.Hour), start.Add(4*time.Hour)))
	// Полное вложение
	assert.True(t, r.ConflictsWith(start.Add(-time.Hour), start.Add(5*time.Hour)))
	// Касание границ не конфликт: [15:00,18:00) и [21:00,22:00)
	assert.False(t, r.ConflictsWith(start.Add(-3*time.Hour), start))
	assert.False(t, r.ConflictsWith(r.EndTime, r.EndTime.Add(time.Hour)))
	// Не пересекается
	assert.False(t, r.ConflictsWith(start.Add(-5*time.Hour), start.Add(-2*time.Hour)))
}

func TestReservation_CancelledDoesNotConflict(t *testing.T) {
	start := testNow.Add(6 * time.Hour)
	r := newTestReservation(t, start)

	require.NoError(t, r.UpdateStatus(ReservationStatusCancelled))
	assert.False(t, r.ConflictsWith(start, start.Add(time.Hour)))
}

func TestReservation_StatusMachine(t *testing.T) {
	start := testNow.Add(6 * time.Hour)

	for _, terminal := range TerminalReservationStatuses {
		r := newTestReservation(t, start)
		require.NoError(t, r.UpdateStatus(terminal))

		// Из терминального статуса нет ни одного разрешенного перехода
		for _, next := range []ReservationStatus{
			ReservationStatusConfirmed,
			ReservationStatusCancelled,
			ReservationStatusCompleted,
			ReservationStatusNoShow,
		} {
			err := r.UpdateStatus(next)
			assert.ErrorIs(t, err, ErrInvalidTransition, "from %s to %s", terminal, next)
		}
		assert.Equal(t, terminal, r.Status)
	}
}

func TestReservation_UpdateStatusUnknown(t *testing.T) {
	r := newTestReservation(t, testNow.Add(6*time.Hour))
	err := r.UpdateStatus("postponed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

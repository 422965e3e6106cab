package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	hoursStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/operatinghours"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// Monday 2026-03-02
var testStart = time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	conflicts []*domain.Reservation

	lastStart, lastEnd time.Time
}

func (f *fakeReservationRepo) GetConflicting(_ context.Context, tableID int64, start, end time.Time) ([]*domain.Reservation, error) {
	f.lastStart, f.lastEnd = start, end
	return f.conflicts, nil
}

type fakeHoursRepo struct {
	hours *domain.OperatingHours
}

func (f *fakeHoursRepo) GetByRestaurantAndDay(_ context.Context, restaurantID int64, day time.Weekday) (*domain.OperatingHours, error) {
	if f.hours == nil || f.hours.DayOfWeek != day {
		return nil, hoursStorage.ErrOperatingHoursNotFound
	}
	return f.hours, nil
}

type fakeBlockRepo struct {
	blocks []*domain.AvailabilityBlock
}

func (f *fakeBlockRepo) GetOverlapping(_ context.Context, restaurantID int64, start, end time.Time) ([]*domain.AvailabilityBlock, error) {
	return f.blocks, nil
}

func mustHours(t *testing.T, day time.Weekday, open, close string, overnight bool) *domain.OperatingHours {
	t.Helper()
	hours, err := domain.NewOperatingHours(1, day, types.TimeString(open), types.TimeString(close), overnight)
	require.NoError(t, err)
	return hours
}

func mustBlock(t *testing.T, tableID *int64, start, end time.Time) *domain.AvailabilityBlock {
	t.Helper()
	block, err := domain.NewAvailabilityBlock(1, tableID, start, end, "private event")
	require.NoError(t, err)
	return block
}

func newTestUseCase(reservations *fakeReservationRepo, hours *fakeHoursRepo, blocks *fakeBlockRepo) *UseCase {
	return NewUseCase(reservations, hours, blocks, 180, nopLogger{})
}

func TestExecute_Available(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeHoursRepo{hours: mustHours(t, time.Monday, "09:00", "22:00", false)},
		&fakeBlockRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 1, StartTime: testStart})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reasons)
}

func TestExecute_AccumulatesAllReasons(t *testing.T) {
	conflict := &domain.Reservation{
		ID: 7, CustomerID: 1, RestaurantID: 1, TableID: 1,
		StartTime: testStart.Add(-time.Hour),
		EndTime:   testStart.Add(time.Hour),
		PartySize: 2,
		Status:    domain.ReservationStatusConfirmed,
	}
	uc := newTestUseCase(
		&fakeReservationRepo{conflicts: []*domain.Reservation{conflict}},
		&fakeHoursRepo{}, // no hours record, the day is closed
		&fakeBlockRepo{blocks: []*domain.AvailabilityBlock{
			mustBlock(t, nil, testStart.Add(-time.Hour), testStart.Add(2*time.Hour)),
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 1, StartTime: testStart})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, []string{ReasonRestaurantClosed, ReasonTableUnavailable, ReasonBlocked}, resp.Reasons)
}

func TestExecute_MissingHoursMeansClosed(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeHoursRepo{}, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 1, StartTime: testStart})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, []string{ReasonRestaurantClosed}, resp.Reasons)
}

func TestExecute_TableScopedBlock(t *testing.T) {
	otherTable := int64(2)
	thisTable := int64(1)

	hours := &fakeHoursRepo{hours: mustHours(t, time.Monday, "09:00", "22:00", false)}

	// Block on another table does not affect the requested one
	uc := newTestUseCase(&fakeReservationRepo{}, hours, &fakeBlockRepo{blocks: []*domain.AvailabilityBlock{
		mustBlock(t, &otherTable, testStart.Add(-time.Hour), testStart.Add(2*time.Hour)),
	}})
	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 1, StartTime: testStart})
	require.NoError(t, err)
	assert.True(t, resp.Available)

	// Block on the requested table makes it unavailable
	uc = newTestUseCase(&fakeReservationRepo{}, hours, &fakeBlockRepo{blocks: []*domain.AvailabilityBlock{
		mustBlock(t, &thisTable, testStart.Add(-time.Hour), testStart.Add(2*time.Hour)),
	}})
	resp, err = uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 1, StartTime: testStart})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, []string{ReasonBlocked}, resp.Reasons)
}

func TestExecute_OvernightWindow(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeHoursRepo{hours: mustHours(t, time.Monday, "18:00", "02:00", true)},
		&fakeBlockRepo{},
	)

	lateEvening := time.Date(2026, time.March, 2, 23, 30, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 1, StartTime: lateEvening})
	require.NoError(t, err)

	assert.True(t, resp.Available)
}

func TestExecute_DerivesWindowFromPolicy(t *testing.T) {
	reservations := &fakeReservationRepo{}
	uc := newTestUseCase(
		reservations,
		&fakeHoursRepo{hours: mustHours(t, time.Monday, "09:00", "22:00", false)},
		&fakeBlockRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 1, StartTime: testStart})
	require.NoError(t, err)

	assert.Equal(t, testStart, reservations.lastStart)
	assert.Equal(t, testStart.Add(3*time.Hour), reservations.lastEnd)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeHoursRepo{}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 0, TableID: 1, StartTime: testStart})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		RestaurantID: 1, TableID: 1, StartTime: testStart, EndTime: testStart.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

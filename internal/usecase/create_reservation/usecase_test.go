package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	customerStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/customer"
	hoursStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/operatinghours"
	restaurantStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/restaurant"
	tableStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/table"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// Monday 2026-03-02
var (
	testNow   = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	testStart = time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	conflicts []*domain.Reservation
	created   *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	stored := *reservation
	stored.ID = 101
	stored.CreatedAt = testNow
	stored.UpdatedAt = testNow
	f.created = &stored
	return &stored, nil
}

func (f *fakeReservationRepo) GetConflicting(_ context.Context, tableID int64, start, end time.Time) ([]*domain.Reservation, error) {
	return f.conflicts, nil
}

type fakeCustomerRepo struct {
	customer *domain.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if f.customer == nil || f.customer.ID != id {
		return nil, customerStorage.ErrCustomerNotFound
	}
	return f.customer, nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, restaurantStorage.ErrRestaurantNotFound
	}
	return f.restaurant, nil
}

type fakeTableRepo struct {
	table *domain.Table
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	if f.table == nil || f.table.ID != id {
		return nil, tableStorage.ErrTableNotFound
	}
	return f.table, nil
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

type fixture struct {
	reservations *fakeReservationRepo
	customers    *fakeCustomerRepo
	restaurants  *fakeRestaurantRepo
	tables       *fakeTableRepo
	hours        *fakeHoursRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hours, err := domain.NewOperatingHours(1, time.Monday, types.TimeString("09:00"), types.TimeString("22:00"), false)
	require.NoError(t, err)

	return &fixture{
		reservations: &fakeReservationRepo{},
		customers:    &fakeCustomerRepo{customer: &domain.Customer{ID: 1, FirstName: "Anna", LastName: "Lee"}},
		restaurants:  &fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, Status: domain.RestaurantStatusActive}},
		tables:       &fakeTableRepo{table: &domain.Table{ID: 1, RestaurantID: 1, TableNumber: "T1", Capacity: 4}},
		hours:        &fakeHoursRepo{hours: hours},
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.reservations, f.customers, f.restaurants, f.tables, f.hours,
		fakeTxManager{}, 180, 60, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{CustomerID: 1, RestaurantID: 1, TableID: 1, StartTime: testStart, PartySize: 2}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Empty(t, resp.Errors)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, int64(101), resp.Reservation.ID)
	assert.Equal(t, testStart.Add(3*time.Hour), resp.Reservation.EndTime)
	assert.Equal(t, string(domain.ReservationStatusConfirmed), resp.Reservation.Status)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture(t)
	f.customers.customer = nil
	uc := f.useCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, []string{ReasonCustomerNotFound}, resp.Errors)
	assert.Nil(t, resp.Reservation)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	f := newFixture(t)
	f.restaurants.restaurant = nil
	uc := f.useCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, []string{ReasonRestaurantNotFound}, resp.Errors)
}

func TestExecute_TableNotFound(t *testing.T) {
	f := newFixture(t)
	f.tables.table = nil
	uc := f.useCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, []string{ReasonTableNotFound}, resp.Errors)
}

func TestExecute_AccumulatesReasons(t *testing.T) {
	f := newFixture(t)
	f.tables.table.Capacity = 2
	f.hours.hours = nil // closed day
	f.reservations.conflicts = []*domain.Reservation{{
		ID: 5, TableID: 1, StartTime: testStart, EndTime: testStart.Add(time.Hour),
		Status: domain.ReservationStatusConfirmed,
	}}
	uc := f.useCase()

	req := validRequest()
	req.StartTime = testNow.Add(30 * time.Minute) // under the lead time
	req.PartySize = 6

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, ReasonInsufficientLead)
	assert.Contains(t, resp.Errors, ReasonInsufficientCapacity)
	assert.Contains(t, resp.Errors, ReasonClosedDay)
	assert.Contains(t, resp.Errors, ReasonTableUnavailable)
	assert.Nil(t, f.reservations.created)
}

func TestExecute_TableWrongRestaurant(t *testing.T) {
	f := newFixture(t)
	f.tables.table.RestaurantID = 2
	uc := f.useCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, []string{ReasonTableWrongRestaurant}, resp.Errors)
}

func TestExecute_BeyondClosing(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase()

	req := validRequest()
	// 21:30 + 3h overruns the 22:00 close
	req.StartTime = time.Date(2026, time.March, 2, 21, 30, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, []string{ReasonBeyondClosing}, resp.Errors)
}

func TestExecute_OvernightFits(t *testing.T) {
	f := newFixture(t)
	hours, err := domain.NewOperatingHours(1, time.Monday, types.TimeString("18:00"), types.TimeString("04:00"), true)
	require.NoError(t, err)
	f.hours.hours = hours
	uc := f.useCase()

	req := validRequest()
	// 23:30 + 3h ends at 02:30, inside the overnight window
	req.StartTime = time.Date(2026, time.March, 2, 23, 30, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Success)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase()

	req := validRequest()
	req.PartySize = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = time.Time{}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	reservationStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/reservation"
	"github.com/dmtrv/RB-ReservationService/internal/service/reservations/models"
)

var testStart = time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	lastFilter   domain.RestaurantReservationsFilter
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{reservations: make(map[int64]*domain.Reservation)}
	for _, r := range reservations {
		repo.reservations[r.ID] = r
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationStorage.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.CustomerID != customerID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) GetByRestaurantWithFilter(_ context.Context, filter domain.RestaurantReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.RestaurantID == filter.RestaurantID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationStorage.ErrReservationNotFound
	}
	r.Status = status
	return nil
}

func confirmedReservation(id, customerID int64) *domain.Reservation {
	return &domain.Reservation{
		ID: id, CustomerID: customerID, RestaurantID: 1, TableID: 1,
		StartTime: testStart, EndTime: testStart.Add(3 * time.Hour),
		PartySize: 2, Status: domain.ReservationStatusConfirmed,
	}
}

func TestGetByID_OwnerOnly(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(10, 1))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)

	_, err = svc.GetByID(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_Transitions(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(10, 1))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ReservationStatusCancelled), resp.Status)

	// Cancelled is terminal, the second cancel is rejected
	_, err = svc.Cancel(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel_OwnerOnly(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(10, 1))
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.ReservationStatusConfirmed, repo.reservations[10].Status)
}

func TestComplete_TerminalRejected(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(10, 1))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Complete(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ReservationStatusCompleted), resp.Status)

	_, err = svc.MarkNoShow(context.Background(), 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMarkNoShow(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(10, 1))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.MarkNoShow(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ReservationStatusNoShow), resp.Status)
}

func TestGetByCustomer_StatusFilter(t *testing.T) {
	cancelled := confirmedReservation(11, 1)
	cancelled.Status = domain.ReservationStatusCancelled
	repo := newFakeRepo(confirmedReservation(10, 1), cancelled, confirmedReservation(12, 2))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByCustomer(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	status := string(domain.ReservationStatusCancelled)
	resp, err = svc.GetByCustomer(context.Background(), 1, &status)
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(11), resp.Reservations[0].ID)

	bad := "unknown"
	_, err = svc.GetByCustomer(context.Background(), 1, &bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByRestaurant_BuildsDomainFilter(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(10, 1))
	svc := NewService(repo, nopLogger{})

	tableID := int64(3)
	from := testStart
	to := testStart.Add(24 * time.Hour)
	status := string(domain.ReservationStatusConfirmed)

	resp, err := svc.GetByRestaurant(context.Background(), &models.GetRestaurantReservationsRequest{
		RestaurantID:     1,
		TableID:          &tableID,
		StartDate:        &from,
		EndDate:          &to,
		Status:           &status,
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	filter := repo.lastFilter
	assert.Equal(t, int64(1), filter.RestaurantID)
	require.NotNil(t, filter.TableID)
	assert.Equal(t, tableID, *filter.TableID)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.ReservationStatusConfirmed, *filter.Status)
	assert.True(t, filter.IncludeCancelled)
}

func TestGetByRestaurant_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	bad := "unknown"
	_, err := svc.GetByRestaurant(context.Background(), &models.GetRestaurantReservationsRequest{
		RestaurantID: 1,
		Status:       &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	restaurantStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/restaurant"
	"github.com/dmtrv/RB-ReservationService/internal/service/assignment/models"
)

var testStart = time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetByRestaurantID(_ context.Context, restaurantID int64) ([]*domain.Table, error) {
	return f.tables, nil
}

type fakeReservationRepo struct {
	// conflicting reservation ids per table
	busyTables map[int64]bool
}

func (f *fakeReservationRepo) GetConflicting(_ context.Context, tableID int64, start, end time.Time) ([]*domain.Reservation, error) {
	if f.busyTables[tableID] {
		return []*domain.Reservation{{ID: 1, TableID: tableID, StartTime: start, EndTime: end,
			Status: domain.ReservationStatusConfirmed}}, nil
	}
	return nil, nil
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

// Tables arrive from the repository already sorted: capacity ASC, table number ASC
func testTables() []*domain.Table {
	return []*domain.Table{
		{ID: 1, RestaurantID: 1, TableNumber: "T1", Capacity: 2},
		{ID: 2, RestaurantID: 1, TableNumber: "T2", Capacity: 4},
		{ID: 3, RestaurantID: 1, TableNumber: "T3", Capacity: 4},
		{ID: 4, RestaurantID: 1, TableNumber: "T4", Capacity: 6},
	}
}

func newTestService(tables *fakeTableRepo, reservations *fakeReservationRepo, restaurants *fakeRestaurantRepo) *Service {
	return NewService(tables, reservations, restaurants, 180, nopLogger{})
}

func TestFindBestTable_SmallestSufficientCapacity(t *testing.T) {
	svc := newTestService(
		&fakeTableRepo{tables: testTables()},
		&fakeReservationRepo{},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1}},
	)

	resp, err := svc.FindBestTable(context.Background(), &models.FindBestTableRequest{
		RestaurantID: 1, StartTime: testStart, PartySize: 3,
	})
	require.NoError(t, err)

	require.True(t, resp.Found)
	// Capacity 2 is too small, among the two four-seaters the lower number wins
	assert.Equal(t, "T2", resp.Table.TableNumber)
	assert.Equal(t, 4, resp.Table.Capacity)
}

func TestFindBestTable_SkipsConflictingTables(t *testing.T) {
	svc := newTestService(
		&fakeTableRepo{tables: testTables()},
		&fakeReservationRepo{busyTables: map[int64]bool{2: true}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1}},
	)

	resp, err := svc.FindBestTable(context.Background(), &models.FindBestTableRequest{
		RestaurantID: 1, StartTime: testStart, PartySize: 3,
	})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.Equal(t, "T3", resp.Table.TableNumber)
}

func TestFindBestTable_NoneAvailable(t *testing.T) {
	svc := newTestService(
		&fakeTableRepo{tables: testTables()},
		&fakeReservationRepo{},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1}},
	)

	resp, err := svc.FindBestTable(context.Background(), &models.FindBestTableRequest{
		RestaurantID: 1, StartTime: testStart, PartySize: 10,
	})
	require.NoError(t, err)

	assert.False(t, resp.Found)
	assert.Nil(t, resp.Table)
}

func TestGetAvailableTables_FiltersByCapacity(t *testing.T) {
	svc := newTestService(
		&fakeTableRepo{tables: testTables()},
		&fakeReservationRepo{},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1}},
	)

	resp, err := svc.GetAvailableTables(context.Background(), &models.FindBestTableRequest{
		RestaurantID: 1, StartTime: testStart, PartySize: 3,
	})
	require.NoError(t, err)

	require.Len(t, resp.Tables, 3)
	assert.Equal(t, "T2", resp.Tables[0].TableNumber)
	assert.Equal(t, "T3", resp.Tables[1].TableNumber)
	assert.Equal(t, "T4", resp.Tables[2].TableNumber)
}

func TestFindBestTable_RestaurantNotFound(t *testing.T) {
	svc := newTestService(&fakeTableRepo{}, &fakeReservationRepo{}, &fakeRestaurantRepo{})

	_, err := svc.FindBestTable(context.Background(), &models.FindBestTableRequest{
		RestaurantID: 42, StartTime: testStart, PartySize: 2,
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestFindBestTable_InvalidInput(t *testing.T) {
	svc := newTestService(&fakeTableRepo{}, &fakeReservationRepo{}, &fakeRestaurantRepo{})

	_, err := svc.FindBestTable(context.Background(), &models.FindBestTableRequest{
		RestaurantID: 1, StartTime: testStart, PartySize: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetAvailableTables(context.Background(), &models.FindBestTableRequest{
		RestaurantID: 0, StartTime: testStart, PartySize: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

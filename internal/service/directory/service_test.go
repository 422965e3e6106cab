package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	customerStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/customer"
	restaurantStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/restaurant"
	tableStorage "github.com/dmtrv/RB-ReservationService/internal/infra/storage/table"
	"github.com/dmtrv/RB-ReservationService/internal/service/directory/models"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRestaurantRepo struct {
	restaurants map[int64]*domain.Restaurant
	nextID      int64
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: make(map[int64]*domain.Restaurant), nextID: 1}
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	stored := *restaurant
	stored.ID = f.nextID
	f.nextID++
	f.restaurants[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, restaurantStorage.ErrRestaurantNotFound
	}
	return restaurant, nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, restaurant *domain.Restaurant) error {
	if _, ok := f.restaurants[restaurant.ID]; !ok {
		return restaurantStorage.ErrRestaurantNotFound
	}
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

type fakeTableRepo struct {
	tables map[int64]*domain.Table
	nextID int64
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[int64]*domain.Table), nextID: 1}
}

func (f *fakeTableRepo) Create(_ context.Context, table *domain.Table) (*domain.Table, error) {
	stored := *table
	stored.ID = f.nextID
	f.nextID++
	f.tables[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	table, ok := f.tables[id]
	if !ok {
		return nil, tableStorage.ErrTableNotFound
	}
	return table, nil
}

func (f *fakeTableRepo) UpdateStatus(_ context.Context, id int64, status domain.TableStatus) error {
	table, ok := f.tables[id]
	if !ok {
		return tableStorage.ErrTableNotFound
	}
	table.Status = status
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*domain.Customer), nextID: 1}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	stored := *customer
	stored.ID = f.nextID
	f.nextID++
	f.customers[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, customerStorage.ErrCustomerNotFound
	}
	return customer, nil
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email types.Email) (*domain.Customer, error) {
	for _, customer := range f.customers {
		if customer.Email == email {
			return customer, nil
		}
	}
	return nil, customerStorage.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := f.customers[customer.ID]; !ok {
		return customerStorage.ErrCustomerNotFound
	}
	f.customers[customer.ID] = customer
	return nil
}

type fixture struct {
	restaurants *fakeRestaurantRepo
	tables      *fakeTableRepo
	customers   *fakeCustomerRepo
	svc         *Service
}

func newFixture() *fixture {
	f := &fixture{
		restaurants: newFakeRestaurantRepo(),
		tables:      newFakeTableRepo(),
		customers:   newFakeCustomerRepo(),
	}
	f.svc = NewService(f.restaurants, f.tables, f.customers, nopLogger{})
	return f
}

func validRestaurantRequest() *models.CreateRestaurantRequest {
	return &models.CreateRestaurantRequest{
		OwnerID:     1,
		Name:        "Trattoria Roma",
		CuisineType: "italian",
		Description: "Family-run trattoria",
		Address:     "12 Via Appia",
		Phone:       "+79991234567",
	}
}

func TestCreateRestaurant(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateRestaurant(context.Background(), validRestaurantRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.RestaurantStatusActive), resp.Status)

	req := validRestaurantRequest()
	req.Name = ""
	_, err = f.svc.CreateRestaurant(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateRestaurantStatus_Machine(t *testing.T) {
	f := newFixture()
	created, err := f.svc.CreateRestaurant(context.Background(), validRestaurantRequest())
	require.NoError(t, err)

	resp, err := f.svc.UpdateRestaurantStatus(context.Background(), created.ID, "inactive")
	require.NoError(t, err)
	assert.Equal(t, "inactive", resp.Status)

	resp, err = f.svc.UpdateRestaurantStatus(context.Background(), created.ID, "suspended")
	require.NoError(t, err)
	assert.Equal(t, "suspended", resp.Status)

	// Suspended cannot go straight back to active
	_, err = f.svc.UpdateRestaurantStatus(context.Background(), created.ID, "active")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.UpdateRestaurantStatus(context.Background(), created.ID, "bogus")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.UpdateRestaurantStatus(context.Background(), 99, "active")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestCreateTable(t *testing.T) {
	f := newFixture()
	created, err := f.svc.CreateRestaurant(context.Background(), validRestaurantRequest())
	require.NoError(t, err)

	resp, err := f.svc.CreateTable(context.Background(), &models.CreateTableRequest{
		RestaurantID: created.ID, TableNumber: "T1", Capacity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.TableStatusAvailable), resp.Status)

	_, err = f.svc.CreateTable(context.Background(), &models.CreateTableRequest{
		RestaurantID: 99, TableNumber: "T1", Capacity: 4,
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	_, err = f.svc.CreateTable(context.Background(), &models.CreateTableRequest{
		RestaurantID: created.ID, TableNumber: "T2", Capacity: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetTableStatus(t *testing.T) {
	f := newFixture()
	restaurant, err := f.svc.CreateRestaurant(context.Background(), validRestaurantRequest())
	require.NoError(t, err)
	table, err := f.svc.CreateTable(context.Background(), &models.CreateTableRequest{
		RestaurantID: restaurant.ID, TableNumber: "T1", Capacity: 4,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.SetTableStatus(context.Background(), table.ID, "out_of_service"))
	assert.Equal(t, domain.TableStatusOutOfService, f.tables.tables[table.ID].Status)

	assert.ErrorIs(t, f.svc.SetTableStatus(context.Background(), table.ID, "bogus"), ErrInvalidInput)
	assert.ErrorIs(t, f.svc.SetTableStatus(context.Background(), 99, "available"), ErrTableNotFound)
}

func TestRegisterCustomer_NormalizesEmail(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.RegisterCustomer(context.Background(), &models.RegisterCustomerRequest{
		FirstName: "Anna", LastName: "Lee", Email: "Anna.Lee@Example.COM", Phone: "+79991234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "anna.lee@example.com", resp.Email)
}

func TestRegisterCustomer_DuplicateEmail(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RegisterCustomer(context.Background(), &models.RegisterCustomerRequest{
		FirstName: "Anna", LastName: "Lee", Email: "anna@example.com", Phone: "+79991234567",
	})
	require.NoError(t, err)

	// Same address in different case is the same customer
	_, err = f.svc.RegisterCustomer(context.Background(), &models.RegisterCustomerRequest{
		FirstName: "Ann", LastName: "Lee", Email: "ANNA@example.com", Phone: "+79991234568",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateCustomerContact(t *testing.T) {
	f := newFixture()

	first, err := f.svc.RegisterCustomer(context.Background(), &models.RegisterCustomerRequest{
		FirstName: "Anna", LastName: "Lee", Email: "anna@example.com", Phone: "+79991234567",
	})
	require.NoError(t, err)
	_, err = f.svc.RegisterCustomer(context.Background(), &models.RegisterCustomerRequest{
		FirstName: "Boris", LastName: "Kim", Email: "boris@example.com", Phone: "+79991234568",
	})
	require.NoError(t, err)

	resp, err := f.svc.UpdateCustomerContact(context.Background(), &models.UpdateCustomerContactRequest{
		CustomerID: first.ID, Email: "anna.new@example.com", Phone: "+79990000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "anna.new@example.com", resp.Email)
	assert.Equal(t, "+79990000000", resp.Phone)

	// Keeping your own email is not a conflict
	_, err = f.svc.UpdateCustomerContact(context.Background(), &models.UpdateCustomerContactRequest{
		CustomerID: first.ID, Email: "anna.new@example.com", Phone: "+79990000001",
	})
	require.NoError(t, err)

	// Taking someone else's email is
	_, err = f.svc.UpdateCustomerContact(context.Background(), &models.UpdateCustomerContactRequest{
		CustomerID: first.ID, Email: "boris@example.com", Phone: "+79990000001",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = f.svc.UpdateCustomerContact(context.Background(), &models.UpdateCustomerContactRequest{
		CustomerID: 99, Email: "x@example.com", Phone: "+79990000001",
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

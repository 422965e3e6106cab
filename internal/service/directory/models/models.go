package models

import (
	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

// Request модели

// CreateRestaurantRequest запрос на регистрацию ресторана
type CreateRestaurantRequest struct {
	OwnerID     int64  `json:"ownerId"`
	Name        string `json:"name"`
	CuisineType string `json:"cuisineType"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// CreateTableRequest запрос на добавление столика в ресторан
type CreateTableRequest struct {
	RestaurantID int64  `json:"restaurantId"`
	TableNumber  string `json:"tableNumber"`
	Capacity     int    `json:"capacity"`
}

// RegisterCustomerRequest запрос на регистрацию гостя
type RegisterCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UpdateCustomerContactRequest запрос на смену контактов гостя
type UpdateCustomerContactRequest struct {
	CustomerID int64  `json:"customerId"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Response модели

// RestaurantResponse данные ресторана
type RestaurantResponse struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"ownerId"`
	Name        string `json:"name"`
	CuisineType string `json:"cuisineType"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
}

// TableResponse данные столика
type TableResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	TableNumber  string `json:"tableNumber"`
	Capacity     int    `json:"capacity"`
	Status       string `json:"status"`
}

// CustomerResponse данные гостя
type CustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FromDomainRestaurant конвертирует domain ресторан в response
func FromDomainRestaurant(restaurant *domain.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:          restaurant.ID,
		OwnerID:     restaurant.OwnerID,
		Name:        restaurant.Name,
		CuisineType: restaurant.CuisineType,
		Description: restaurant.Description,
		Address:     restaurant.Address,
		Phone:       string(restaurant.Phone),
		Status:      string(restaurant.Status),
	}
}

// FromDomainTable конвертирует domain столик в response
func FromDomainTable(table *domain.Table) *TableResponse {
	return &TableResponse{
		ID:           table.ID,
		RestaurantID: table.RestaurantID,
		TableNumber:  table.TableNumber,
		Capacity:     table.Capacity,
		Status:       string(table.Status),
	}
}

// FromDomainCustomer конвертирует domain гостя в response
func FromDomainCustomer(customer *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     string(customer.Email),
		Phone:     string(customer.Phone),
	}
}

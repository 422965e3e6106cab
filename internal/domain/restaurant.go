package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// RestaurantStatus represents the status of a restaurant
type RestaurantStatus string

const (
	RestaurantStatusActive    RestaurantStatus = "active"
	RestaurantStatusInactive  RestaurantStatus = "inactive"
	RestaurantStatusSuspended RestaurantStatus = "suspended"
)

// restaurantStatuses допустимые значения статуса ресторана
var restaurantStatuses = map[RestaurantStatus]struct{}{
	RestaurantStatusActive:    {},
	RestaurantStatusInactive:  {},
	RestaurantStatusSuspended: {},
}

// Restaurant represents a restaurant that accepts table reservations
type Restaurant struct {
	ID          int64
	OwnerID     int64
	Name        string
	CuisineType string
	Description string
	Address     string
	Phone       types.Phone
	Status      RestaurantStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRestaurant создает ресторан с проверкой локальных инвариантов
func NewRestaurant(ownerID int64, name, cuisineType, description, address string, phone types.Phone) (*Restaurant, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner id", ErrInvalidID)
	}
	if err := validateRestaurantFields(name, cuisineType, description, address); err != nil {
		return nil, err
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone", ErrEmptyField)
	}

	return &Restaurant{
		OwnerID:     ownerID,
		Name:        name,
		CuisineType: cuisineType,
		Description: description,
		Address:     address,
		Phone:       phone,
		Status:      RestaurantStatusActive,
	}, nil
}

// UpdateStatus выполняет переход статуса ресторана
// Active ⇄ Inactive свободно, оба могут перейти в Suspended;
// прямой переход Suspended → Active запрещен (только через Inactive)
func (r *Restaurant) UpdateStatus(status RestaurantStatus) error {
	if _, ok := restaurantStatuses[status]; !ok {
		return fmt.Errorf("%w: restaurant status %q", ErrInvalidStatus, status)
	}
	if r.Status == RestaurantStatusSuspended && status == RestaurantStatusActive {
		return fmt.Errorf("%w: cannot transition directly from suspended to active", ErrInvalidTransition)
	}
	r.Status = status
	return nil
}

// UpdateDetails обновляет описательные поля ресторана
func (r *Restaurant) UpdateDetails(name, description, address string, phone types.Phone) error {
	if err := validateRestaurantFields(name, r.CuisineType, description, address); err != nil {
		return err
	}
	if phone == "" {
		return fmt.Errorf("%w: phone", ErrEmptyField)
	}

	r.Name = name
	r.Description = description
	r.Address = address
	r.Phone = phone
	return nil
}

func validateRestaurantFields(name, cuisineType, description, address string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name", ErrEmptyField)
	}
	if strings.TrimSpace(cuisineType) == "" {
		return fmt.Errorf("%w: cuisine type", ErrEmptyField)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description", ErrEmptyField)
	}
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: address", ErrEmptyField)
	}
	if len(name) < MinRestaurantNameLength || len(name) > MaxRestaurantNameLength {
		return fmt.Errorf("%w: name must be %d-%d characters", ErrNameLength, MinRestaurantNameLength, MaxRestaurantNameLength)
	}
	return nil
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// TableStatus represents the status of a restaurant table
type TableStatus string

const (
	TableStatusAvailable    TableStatus = "available"
	TableStatusOccupied     TableStatus = "occupied"
	TableStatusReserved     TableStatus = "reserved"
	TableStatusOutOfService TableStatus = "out_of_service"
)

// tableStatuses допустимые значения статуса столика
var tableStatuses = map[TableStatus]struct{}{
	TableStatusAvailable:    {},
	TableStatusOccupied:     {},
	TableStatusReserved:     {},
	TableStatusOutOfService: {},
}

// Table represents a physical table in a restaurant
// Идентификатор присваивается хранилищем при сохранении (RETURNING id),
// у новой сущности ID равен нулю
type Table struct {
	ID           int64
	RestaurantID int64
	TableNumber  string // уникален в пределах ресторана, уникальность обеспечивает хранилище
	Capacity     int
	Status       TableStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTable создает столик с проверкой локальных инвариантов
func NewTable(restaurantID int64, tableNumber string, capacity int) (*Table, error) {
	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurant id", ErrInvalidID)
	}
	if strings.TrimSpace(tableNumber) == "" {
		return nil, fmt.Errorf("%w: table number", ErrEmptyField)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Table{
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		Capacity:     capacity,
		Status:       TableStatusAvailable,
	}, nil
}

// UpdateStatus меняет статус столика
// Переходы между статусами столика не ограничены
func (t *Table) UpdateStatus(status TableStatus) error {
	if _, ok := tableStatuses[status]; !ok {
		return fmt.Errorf("%w: table status %q", ErrInvalidStatus, status)
	}
	t.Status = status
	return nil
}

// UpdateCapacity меняет вместимость столика, вместимость остается положительной
func (t *Table) UpdateCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	t.Capacity = capacity
	return nil
}

// CanSeat возвращает true, если столик вмещает компанию указанного размера
func (t *Table) CanSeat(partySize int) bool {
	return t.Capacity >= partySize
}

package assignment

import (
	"context"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID int64) ([]*domain.Table, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetConflicting(ctx context.Context, tableID int64, start, end time.Time) ([]*domain.Reservation, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

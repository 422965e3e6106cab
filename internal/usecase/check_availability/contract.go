package check_availability

import (
	"context"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetConflicting(ctx context.Context, tableID int64, start, end time.Time) ([]*domain.Reservation, error)
}

// OperatingHoursRepository интерфейс репозитория рабочих часов
type OperatingHoursRepository interface {
	GetByRestaurantAndDay(ctx context.Context, restaurantID int64, day time.Weekday) (*domain.OperatingHours, error)
}

// AvailabilityBlockRepository интерфейс репозитория блокировок доступности
type AvailabilityBlockRepository interface {
	GetOverlapping(ctx context.Context, restaurantID int64, start, end time.Time) ([]*domain.AvailabilityBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package schedule

import (
	"context"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

// OperatingHoursRepository интерфейс репозитория рабочих часов
type OperatingHoursRepository interface {
	Create(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error)
	GetByRestaurantAndDay(ctx context.Context, restaurantID int64, day time.Weekday) (*domain.OperatingHours, error)
	GetByRestaurantID(ctx context.Context, restaurantID int64) ([]*domain.OperatingHours, error)
	Update(ctx context.Context, hours *domain.OperatingHours) error
}

// AvailabilityBlockRepository интерфейс репозитория блокировок доступности
type AvailabilityBlockRepository interface {
	Create(ctx context.Context, block *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error)
	Update(ctx context.Context, block *domain.AvailabilityBlock) error
	Delete(ctx context.Context, id int64) error
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

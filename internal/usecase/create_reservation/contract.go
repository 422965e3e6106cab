package create_reservation

import (
	"context"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetConflicting(ctx context.Context, tableID int64, start, end time.Time) ([]*domain.Reservation, error)
}

// CustomerRepository интерфейс репозитория гостей
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// OperatingHoursRepository интерфейс репозитория рабочих часов
type OperatingHoursRepository interface {
	GetByRestaurantAndDay(ctx context.Context, restaurantID int64, day time.Weekday) (*domain.OperatingHours, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

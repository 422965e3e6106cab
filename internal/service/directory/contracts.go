package directory

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	Update(ctx context.Context, restaurant *domain.Restaurant) error
}

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error
}

// CustomerRepository интерфейс репозитория гостей
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email types.Email) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

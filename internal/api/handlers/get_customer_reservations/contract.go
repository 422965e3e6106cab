package get_customer_reservations

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByCustomer(ctx context.Context, customerID int64, status *string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

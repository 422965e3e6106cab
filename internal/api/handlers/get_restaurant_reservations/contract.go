package get_restaurant_reservations

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByRestaurant(ctx context.Context, req *models.GetRestaurantReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

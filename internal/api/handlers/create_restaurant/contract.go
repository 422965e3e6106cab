package create_restaurant

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/directory/models"
)

type DirectoryService interface {
	CreateRestaurant(ctx context.Context, req *models.CreateRestaurantRequest) (*models.RestaurantResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

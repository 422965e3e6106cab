package register_customer

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/directory/models"
)

type DirectoryService interface {
	RegisterCustomer(ctx context.Context, req *models.RegisterCustomerRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

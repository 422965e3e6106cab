package create_table

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/directory/models"
)

type DirectoryService interface {
	CreateTable(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

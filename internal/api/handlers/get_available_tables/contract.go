package get_available_tables

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/assignment/models"
)

type AssignmentService interface {
	FindBestTable(ctx context.Context, req *models.FindBestTableRequest) (*models.FindBestTableResponse, error)
	GetAvailableTables(ctx context.Context, req *models.FindBestTableRequest) (*models.AvailableTablesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

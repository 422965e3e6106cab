package update_availability_block

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateBlock(ctx context.Context, req *models.UpdateBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

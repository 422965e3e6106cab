package set_operating_hours

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	SetHours(ctx context.Context, req *models.SetHoursRequest) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

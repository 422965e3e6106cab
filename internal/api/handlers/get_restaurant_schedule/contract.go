package get_restaurant_schedule

import (
	"context"

	"github.com/dmtrv/RB-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeekSchedule(ctx context.Context, restaurantID int64) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package delete_availability_block

import "context"

type ScheduleService interface {
	DeleteBlock(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

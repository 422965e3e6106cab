package availabilityblock

import "github.com/dmtrv/RB-ReservationService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

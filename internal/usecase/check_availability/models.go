package check_availability

import "time"

// Request модель запроса проверки доступности столика
type Request struct {
	RestaurantID int64     // ID ресторана
	TableID      int64     // ID столика
	StartTime    time.Time // начало окна брони
	EndTime      time.Time // конец окна; если нулевой, выводится из политики бронирования
}

// Response вердикт проверки доступности
// Бизнес-причины отказа не являются ошибками: все сработавшие причины
// возвращаются одним списком, чтобы вызывающая сторона показала их разом
type Response struct {
	Available bool
	Reasons   []string
}

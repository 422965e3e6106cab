package create_reservation

import "time"

// Request модель запроса на создание брони
type Request struct {
	CustomerID      int64     // ID гостя
	RestaurantID    int64     // ID ресторана
	TableID         int64     // ID столика
	StartTime       time.Time // начало брони; конец выводится из политики бронирования
	PartySize       int       // размер компании
	SpecialRequests string    // пожелания гостя (опционально)
}

// CreatedReservation данные созданной брони
type CreatedReservation struct {
	ID              int64
	CustomerID      int64
	RestaurantID    int64
	TableID         int64
	StartTime       time.Time
	EndTime         time.Time
	PartySize       int
	SpecialRequests string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Response результат создания брони
// Бизнес-отказы не являются ошибками: при Success=false бронь не создана,
// а Errors содержит все сработавшие причины
type Response struct {
	Success     bool
	Errors      []string
	Reservation *CreatedReservation // nil при Success=false
}

func failure(reasons ...string) *Response {
	return &Response{Success: false, Errors: reasons}
}

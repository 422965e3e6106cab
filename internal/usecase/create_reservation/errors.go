package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// Человекочитаемые причины отказа бизнес-валидации
// Отсутствие ресторана или столика прерывает проверку сразу, остальные
// причины накапливаются и возвращаются одним списком
const (
	ReasonCustomerNotFound     = "customer not found"
	ReasonRestaurantNotFound   = "restaurant not found"
	ReasonTableNotFound        = "table not found"
	ReasonInsufficientCapacity = "table capacity is insufficient for party size"
	ReasonTableWrongRestaurant = "table does not belong to the specified restaurant"
	ReasonClosedDay            = "restaurant is closed on the requested day"
	ReasonOutsideHours         = "reservation time is outside operating hours"
	ReasonBeyondClosing        = "reservation would extend beyond closing time"
	ReasonTableUnavailable     = "table is not available during the requested time"
	ReasonInsufficientLead     = "reservation must be made further in advance"
)

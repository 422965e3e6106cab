package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)

// Человекочитаемые причины отказа; порядок в Response.Reasons фиксированный:
// часы работы, конфликтующие брони, блокировки
const (
	ReasonRestaurantClosed = "restaurant is closed during the requested time"
	ReasonTableUnavailable = "table is not available during the requested time"
	ReasonBlocked          = "restaurant has availability restrictions during the requested time"
)

package schedule

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("table not found")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("availability block not found")

	// ErrTableWrongRestaurant возвращается, когда столик принадлежит другому ресторану
	ErrTableWrongRestaurant = errors.New("table does not belong to the specified restaurant")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

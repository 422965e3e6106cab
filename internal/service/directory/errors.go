package directory

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("directory: restaurant not found")

	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("directory: table not found")

	// ErrCustomerNotFound возвращается, когда гость не найден
	ErrCustomerNotFound = errors.New("directory: customer not found")

	// ErrEmailTaken возвращается при регистрации на уже занятый email
	ErrEmailTaken = errors.New("directory: email is already registered")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("directory: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("directory: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("directory: internal error")
)

package domain

import "errors"

// Нарушения инвариантов сущностей
// Возвращаются конструкторами и мутаторами; бизнес-правила (закрытый ресторан,
// занятый столик) ошибками не являются и возвращаются списками причин
var (
	// ErrInvalidID возвращается при неположительном идентификаторе
	ErrInvalidID = errors.New("domain: id must be positive")

	// ErrEmptyField возвращается, когда обязательное строковое поле пустое
	ErrEmptyField = errors.New("domain: required field is empty")

	// ErrInvalidCapacity возвращается при неположительной вместимости столика
	ErrInvalidCapacity = errors.New("domain: capacity must be positive")

	// ErrInvalidPartySize возвращается при неположительном размере компании гостей
	ErrInvalidPartySize = errors.New("domain: party size must be positive")

	// ErrInvalidTimeRange возвращается при инвертированном временном диапазоне
	ErrInvalidTimeRange = errors.New("domain: end time must be after start time")

	// ErrInsufficientLeadTime возвращается, когда бронь начинается слишком скоро
	ErrInsufficientLeadTime = errors.New("domain: reservation start violates minimum lead time")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrInvalidStatus возвращается при неизвестном значении статуса
	ErrInvalidStatus = errors.New("domain: invalid status value")

	// ErrNameLength возвращается при нарушении ограничений на длину названия
	ErrNameLength = errors.New("domain: name length out of range")

	// ErrFieldTooLong возвращается при превышении лимита длины текстового поля
	ErrFieldTooLong = errors.New("domain: field exceeds maximum length")
)

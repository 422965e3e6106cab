package domain

import (
	"fmt"
	"time"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusNoShow    ReservationStatus = "no_show"
)

// TerminalReservationStatuses статусы, из которых нет дальнейших переходов
var TerminalReservationStatuses = []ReservationStatus{
	ReservationStatusCancelled,
	ReservationStatusCompleted,
	ReservationStatusNoShow,
}

// reservationStatuses допустимые значения статуса брони
var reservationStatuses = map[ReservationStatus]struct{}{
	ReservationStatusConfirmed: {},
	ReservationStatusCancelled: {},
	ReservationStatusCompleted: {},
	ReservationStatusNoShow:    {},
}

// Reservation represents a table booking for a fixed-length time window
// Окно брони полуоткрытое: [StartTime, EndTime)
type Reservation struct {
	ID              int64
	CustomerID      int64
	RestaurantID    int64
	TableID         int64
	StartTime       time.Time
	EndTime         time.Time // производное: StartTime + длительность
	PartySize       int
	SpecialRequests string
	Status          ReservationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewReservation создает бронь с проверкой локальных инвариантов
// Начало должно быть строго больше чем now + minLeadTime; длительность
// фиксированная и передается политикой бронирования (по умолчанию 3 часа)
func NewReservation(
	customerID, restaurantID, tableID int64,
	startTime time.Time,
	partySize int,
	specialRequests string,
	now time.Time,
	minLeadTime, duration time.Duration,
) (*Reservation, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customer id", ErrInvalidID)
	}
	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurant id", ErrInvalidID)
	}
	if tableID <= 0 {
		return nil, fmt.Errorf("%w: table id", ErrInvalidID)
	}
	if partySize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPartySize, partySize)
	}
	if len(specialRequests) > MaxSpecialRequestsLength {
		return nil, fmt.Errorf("%w: special requests exceed %d characters", ErrFieldTooLong, MaxSpecialRequestsLength)
	}
	if !startTime.After(now.Add(minLeadTime)) {
		return nil, fmt.Errorf("%w: start must be more than %s ahead", ErrInsufficientLeadTime, minLeadTime)
	}

	return &Reservation{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		TableID:         tableID,
		StartTime:       startTime,
		EndTime:         startTime.Add(duration),
		PartySize:       partySize,
		SpecialRequests: specialRequests,
		Status:          ReservationStatusConfirmed,
	}, nil
}

// UpdateStatus выполняет переход статуса брони
// Cancelled, Completed и NoShow терминальны: любой переход из них запрещен,
// возврата в Confirmed не существует
func (r *Reservation) UpdateStatus(status ReservationStatus) error {
	if _, ok := reservationStatuses[status]; !ok {
		return fmt.Errorf("%w: reservation status %q", ErrInvalidStatus, status)
	}
	if r.IsTerminal() {
		return fmt.Errorf("%w: reservation is already %s", ErrInvalidTransition, r.Status)
	}
	r.Status = status
	return nil
}

// UpdateSpecialRequests обновляет пожелания гостя
func (r *Reservation) UpdateSpecialRequests(specialRequests string) error {
	if len(specialRequests) > MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests exceed %d characters", ErrFieldTooLong, MaxSpecialRequestsLength)
	}
	r.SpecialRequests = specialRequests
	return nil
}

// IsTerminal возвращает true, если бронь в терминальном статусе
func (r *Reservation) IsTerminal() bool {
	return r.Status == ReservationStatusCancelled ||
		r.Status == ReservationStatusCompleted ||
		r.Status == ReservationStatusNoShow
}

// ConflictsWith возвращает true, если бронь пересекается с окном [start, end)
// Отмененные брони не конфликтуют; касание границ (EndTime == start)
// пересечением не считается
func (r *Reservation) ConflictsWith(start, end time.Time) bool {
	if r.Status == ReservationStatusCancelled {
		return false
	}
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// RestaurantReservationsFilter фильтр для выборки броней ресторана
// Типизированная замена композитных спецификаций: поля опциональны,
// репозиторий транслирует их в предикаты запроса
type RestaurantReservationsFilter struct {
	RestaurantID     int64              // обязательный параметр
	TableID          *int64             // фильтр по столику (опционально)
	StartDate        *time.Time         // начало периода (опционально)
	EndDate          *time.Time         // конец периода (опционально)
	Status           *ReservationStatus // фильтр по статусу (опционально)
	IncludeCancelled bool               // включать ли отмененные брони
}

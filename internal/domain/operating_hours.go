package domain

import (
	"fmt"
	"time"

	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

const minutesPerDay = 24 * 60

// OperatingHours рабочие часы ресторана на один день недели
// Окно работы полуоткрытое: [OpenTime, CloseTime)
// Для ночного режима (IsOvernight) CloseTime численно меньше OpenTime и
// означает время закрытия на следующий день (например, 22:00–02:00)
// Закрытый день представляется IsOpen=false с нулевыми временами
type OperatingHours struct {
	ID           int64
	RestaurantID int64
	DayOfWeek    time.Weekday
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	IsOpen       bool
	IsOvernight  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOperatingHours создает запись рабочих часов
// Для не-ночного режима время закрытия должно быть строго позже открытия
func NewOperatingHours(restaurantID int64, dayOfWeek time.Weekday, openTime, closeTime types.TimeString, isOvernight bool) (*OperatingHours, error) {
	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurant id", ErrInvalidID)
	}
	if err := validateHoursRange(openTime, closeTime, isOvernight); err != nil {
		return nil, err
	}

	return &OperatingHours{
		RestaurantID: restaurantID,
		DayOfWeek:    dayOfWeek,
		OpenTime:     openTime,
		CloseTime:    closeTime,
		IsOpen:       true,
		IsOvernight:  isOvernight,
	}, nil
}

// NewClosedDay создает запись для закрытого дня (sentinel-нули вместо времен)
func NewClosedDay(restaurantID int64, dayOfWeek time.Weekday) (*OperatingHours, error) {
	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurant id", ErrInvalidID)
	}

	return &OperatingHours{
		RestaurantID: restaurantID,
		DayOfWeek:    dayOfWeek,
		OpenTime:     "00:00",
		CloseTime:    "00:00",
		IsOpen:       false,
		IsOvernight:  false,
	}, nil
}

// UpdateHours полностью заменяет рабочие часы дня
func (h *OperatingHours) UpdateHours(openTime, closeTime types.TimeString, isOvernight bool) error {
	if err := validateHoursRange(openTime, closeTime, isOvernight); err != nil {
		return err
	}

	h.OpenTime = openTime
	h.CloseTime = closeTime
	h.IsOpen = true
	h.IsOvernight = isOvernight
	return nil
}

// SetClosed схлопывает день в закрытый
func (h *OperatingHours) SetClosed() {
	h.OpenTime = "00:00"
	h.CloseTime = "00:00"
	h.IsOpen = false
	h.IsOvernight = false
}

// IsWithinOperatingHours возвращает true, если время суток попадает в окно работы
// Граничные случаи: t == OpenTime внутри, t == CloseTime снаружи (в обоих режимах)
func (h *OperatingHours) IsWithinOperatingHours(t types.TimeString) bool {
	if h == nil || !h.IsOpen {
		return false
	}

	open := h.OpenTime.Minutes()
	close := h.CloseTime.Minutes()
	minute := t.Minutes()

	if !h.IsOvernight {
		return minute >= open && minute < close
	}

	// Окно переваливает через полночь: 22:00–02:00 покрывает 23:00 и 01:00
	return minute >= open || minute < close
}

// WindowMinutes возвращает длину окна работы в минутах с учетом ночного режима
func (h *OperatingHours) WindowMinutes() int {
	if !h.IsOpen {
		return 0
	}

	open := h.OpenTime.Minutes()
	close := h.CloseTime.Minutes()

	if !h.IsOvernight {
		return close - open
	}
	return (minutesPerDay - open) + close
}

// FitsReservationWindow возвращает true, если бронь длительностью
// durationMinutes, начинающаяся в start, целиком помещается в окно работы.
// Ночное окно разворачивается за полночь: бронь 23:30+3ч помещается в
// 22:00–04:00, но не в 22:00–02:00
func (h *OperatingHours) FitsReservationWindow(start types.TimeString, durationMinutes int) bool {
	if h == nil || !h.IsOpen || !h.IsWithinOperatingHours(start) {
		return false
	}

	open := h.OpenTime.Minutes()
	startOffset := start.Minutes() - open
	if h.IsOvernight {
		startOffset = (start.Minutes() - open + minutesPerDay) % minutesPerDay
	}

	return startOffset+durationMinutes <= h.WindowMinutes()
}

func validateHoursRange(openTime, closeTime types.TimeString, isOvernight bool) error {
	if err := openTime.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidTimeRange, err)
	}
	if err := closeTime.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidTimeRange, err)
	}
	if !isOvernight && !closeTime.IsAfter(openTime) {
		return fmt.Errorf("%w: close time must be after open time for non-overnight hours", ErrInvalidTimeRange)
	}
	return nil
}

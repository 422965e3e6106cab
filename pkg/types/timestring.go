package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (минутная гранулярность)
// Строковое представление напрямую пригодно для колонок TIME в PostgreSQL
type TimeString string

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// ErrTimeOverflowsDay возвращается, когда арифметика над временем выходит за пределы суток
var ErrTimeOverflowsDay = errors.New("types: time overflows day")

const timeStringLayout = "15:04"

// NewTimeString создает TimeString из time.Time (берет только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит TimeString из строки "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflowsDay, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что значение имеет корректный формат "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток
// Для некорректного значения возвращает 0
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает время через minutes минут
// Возвращает ошибку, если результат выходит за пределы текущих суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.Minutes() + minutes)
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

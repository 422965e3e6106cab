package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Email нормализованный email-адрес
// Значение приводится к нижнему регистру при создании, поэтому сравнение
// через == регистронезависимо
type Email string

// ErrInvalidEmail возвращается при некорректном формате email
var ErrInvalidEmail = errors.New("types: invalid email format")

// emailPattern правило валидации, вынесенное в данные
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NewEmail валидирует и нормализует email-адрес
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidEmail)
	}
	if !emailPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, value)
	}
	return Email(strings.ToLower(value)), nil
}

// String возвращает нормализованное значение
func (e Email) String() string {
	return string(e)
}

// Equals сравнивает адреса без учета регистра
// Работает и для значений, созданных в обход NewEmail
func (e Email) Equals(other Email) bool {
	return strings.EqualFold(string(e), string(other))
}

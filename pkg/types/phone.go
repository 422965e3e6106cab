package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Phone телефонный номер в произвольном национальном формате
type Phone string

// ErrInvalidPhone возвращается при некорректном формате номера
var ErrInvalidPhone = errors.New("types: invalid phone format")

// phonePattern правило валидации, вынесенное в данные
// Допускает опциональный код страны, код города в скобках и разделители
var phonePattern = regexp.MustCompile(`^(\+\d{1,3}[\s-]?)?(\(?\d{1,4}\)?[\s-]?)?[\d\s-]{6,}$`)

// NewPhone валидирует и нормализует телефонный номер
func NewPhone(value string) (Phone, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidPhone)
	}
	if !phonePattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, value)
	}
	return Phone(value), nil
}

// String возвращает значение номера
func (p Phone) String() string {
	return string(p)
}

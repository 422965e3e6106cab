package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// Customer represents a guest who books tables
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     types.Email
	Phone     types.Phone
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer создает гостя с проверкой локальных инвариантов
// Email и телефон валидируются конструкторами типов в pkg/types
func NewCustomer(firstName, lastName string, email types.Email, phone types.Phone) (*Customer, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("%w: first name", ErrEmptyField)
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("%w: last name", ErrEmptyField)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrEmptyField)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone", ErrEmptyField)
	}

	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
	}, nil
}

// UpdateEmail меняет email гостя
func (c *Customer) UpdateEmail(email types.Email) error {
	if email == "" {
		return fmt.Errorf("%w: email", ErrEmptyField)
	}
	c.Email = email
	return nil
}

// UpdatePhone меняет телефон гостя
func (c *Customer) UpdatePhone(phone types.Phone) error {
	if phone == "" {
		return fmt.Errorf("%w: phone", ErrEmptyField)
	}
	c.Phone = phone
	return nil
}

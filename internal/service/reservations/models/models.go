package models

import (
	"errors"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetRestaurantReservationsRequest запрос на получение броней ресторана
type GetRestaurantReservationsRequest struct {
	RestaurantID     int64      `json:"restaurantId"`
	TableID          *int64     `json:"tableId,omitempty"`          // Фильтр по столику (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отмененные брони
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRestaurantReservationsRequest) ToDomainFilter() (domain.RestaurantReservationsFilter, error) {
	filter := domain.RestaurantReservationsFilter{
		RestaurantID:     r.RestaurantID,
		TableID:          r.TableID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse данные брони
type ReservationResponse struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customerId"`
	RestaurantID    int64     `json:"restaurantId"`
	TableID         int64     `json:"tableId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	PartySize       int       `json:"partySize"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReservationListResponse список броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain бронь в response
func FromDomainReservation(reservation *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              reservation.ID,
		CustomerID:      reservation.CustomerID,
		RestaurantID:    reservation.RestaurantID,
		TableID:         reservation.TableID,
		StartTime:       reservation.StartTime,
		EndTime:         reservation.EndTime,
		PartySize:       reservation.PartySize,
		SpecialRequests: reservation.SpecialRequests,
		Status:          string(reservation.Status),
		CreatedAt:       reservation.CreatedAt,
		UpdatedAt:       reservation.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует слайс domain броней в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	responses := make([]ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		responses = append(responses, *FromDomainReservation(reservation))
	}
	return &ReservationListResponse{Reservations: responses}
}

// ToDomainReservationStatus конвертирует строку в domain статус брони
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(status) {
	case domain.ReservationStatusConfirmed:
		return domain.ReservationStatusConfirmed, nil
	case domain.ReservationStatusCancelled:
		return domain.ReservationStatusCancelled, nil
	case domain.ReservationStatusCompleted:
		return domain.ReservationStatusCompleted, nil
	case domain.ReservationStatusNoShow:
		return domain.ReservationStatusNoShow, nil
	default:
		return "", ErrInvalidStatus
	}
}

package create_reservation

import (
	"time"

	createReservation "github.com/dmtrv/RB-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RestaurantID    int64  `json:"restaurantId"`
	TableID         int64  `json:"tableId"`
	StartTime       string `json:"startTime"` // RFC3339, например "2025-10-15T19:00:00Z"
	PartySize       int    `json:"partySize"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// ReservationResponse HTTP response model созданной брони
type ReservationResponse struct {
	ID              int64  `json:"id"`
	CustomerID      int64  `json:"customerId"`
	RestaurantID    int64  `json:"restaurantId"`
	TableID         int64  `json:"tableId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	PartySize       int    `json:"partySize"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// RejectedResponse HTTP response model отказа с причинами
type RejectedResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(customerID int64) (*createReservation.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CustomerID:      customerID,
		RestaurantID:    r.RestaurantID,
		TableID:         r.TableID,
		StartTime:       startTime,
		PartySize:       r.PartySize,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(created *createReservation.CreatedReservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              created.ID,
		CustomerID:      created.CustomerID,
		RestaurantID:    created.RestaurantID,
		TableID:         created.TableID,
		StartTime:       created.StartTime.Format(time.RFC3339),
		EndTime:         created.EndTime.Format(time.RFC3339),
		PartySize:       created.PartySize,
		SpecialRequests: created.SpecialRequests,
		Status:          created.Status,
		CreatedAt:       created.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       created.UpdatedAt.Format(time.RFC3339),
	}
}

package check_availability

import (
	checkAvailability "github.com/dmtrv/RB-ReservationService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model вердикта доступности
type AvailabilityResponse struct {
	Available bool     `json:"available"`
	Reasons   []string `json:"reasons"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: resp.Available,
		Reasons:   resp.Reasons,
	}
}

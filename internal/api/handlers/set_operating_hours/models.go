package set_operating_hours

import (
	"github.com/dmtrv/RB-ReservationService/internal/service/schedule/models"
)

// SetHoursRequest HTTP request model рабочих часов одного дня недели
type SetHoursRequest struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	OpenTime    string `json:"openTime,omitempty"`
	CloseTime   string `json:"closeTime,omitempty"`
	IsOvernight bool   `json:"isOvernight,omitempty"`
	IsClosed    bool   `json:"isClosed,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetHoursRequest) ToServiceRequest(restaurantID int64) *models.SetHoursRequest {
	return &models.SetHoursRequest{
		RestaurantID: restaurantID,
		DayOfWeek:    r.DayOfWeek,
		OpenTime:     r.OpenTime,
		CloseTime:    r.CloseTime,
		IsOvernight:  r.IsOvernight,
		IsClosed:     r.IsClosed,
	}
}

package create_availability_block

import (
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/service/schedule/models"
)

// CreateBlockRequest HTTP request model блокировки доступности
// tableId опционален: без него блокируется весь ресторан
type CreateBlockRequest struct {
	TableID   *int64 `json:"tableId,omitempty"`
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339
	Reason    string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом времени)
func (r *CreateBlockRequest) ToServiceRequest(restaurantID int64) (*models.CreateBlockRequest, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockRequest{
		RestaurantID: restaurantID,
		TableID:      r.TableID,
		StartTime:    startTime,
		EndTime:      endTime,
		Reason:       r.Reason,
	}, nil
}

package update_availability_block

import (
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/service/schedule/models"
)

// UpdateBlockRequest HTTP request model изменения блокировки
type UpdateBlockRequest struct {
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339
	Reason    string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом времени)
func (r *UpdateBlockRequest) ToServiceRequest(blockID int64) (*models.UpdateBlockRequest, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.UpdateBlockRequest{
		BlockID:   blockID,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    r.Reason,
	}, nil
}

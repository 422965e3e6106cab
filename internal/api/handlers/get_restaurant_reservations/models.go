package get_restaurant_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	restaurantID int64,
	tableIDStr string,
	statusStr string,
	fromStr string,
	toStr string,
	includeCancelledStr string,
) (*models.GetRestaurantReservationsRequest, error) {
	req := &models.GetRestaurantReservationsRequest{
		RestaurantID:     restaurantID,
		IncludeCancelled: false, // По умолчанию без отмененных
	}

	// Парсим tableId если указан
	if tableIDStr != "" {
		tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TableID = &tableID
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим границы периода если указаны
	if fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}
	if toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	// Парсим includeCancelled если указан
	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}

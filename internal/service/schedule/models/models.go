package models

import (
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

// Request модели

// SetHoursRequest запрос на замену рабочих часов дня недели
// IsClosed=true схлопывает день в закрытый, времена при этом игнорируются
type SetHoursRequest struct {
	RestaurantID int64  `json:"restaurantId"`
	DayOfWeek    int    `json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	OpenTime     string `json:"openTime"`
	CloseTime    string `json:"closeTime"`
	IsOvernight  bool   `json:"isOvernight"`
	IsClosed     bool   `json:"isClosed"`
}

// CreateBlockRequest запрос на создание блокировки доступности
// TableID=nil означает блокировку всего ресторана
type CreateBlockRequest struct {
	RestaurantID int64     `json:"restaurantId"`
	TableID      *int64    `json:"tableId,omitempty"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Reason       string    `json:"reason"`
}

// UpdateBlockRequest запрос на изменение блокировки
type UpdateBlockRequest struct {
	BlockID   int64     `json:"blockId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    string    `json:"reason"`
}

// Response модели

// HoursResponse рабочие часы одного дня недели
type HoursResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	DayOfWeek    int    `json:"dayOfWeek"`
	OpenTime     string `json:"openTime"`
	CloseTime    string `json:"closeTime"`
	IsOpen       bool   `json:"isOpen"`
	IsOvernight  bool   `json:"isOvernight"`
}

// WeekScheduleResponse недельное расписание ресторана
type WeekScheduleResponse struct {
	Days []HoursResponse `json:"days"`
}

// BlockResponse данные блокировки доступности
type BlockResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	TableID      *int64    `json:"tableId,omitempty"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Reason       string    `json:"reason"`
	BlockType    string    `json:"blockType"`
}

// FromDomainHours конвертирует domain рабочие часы в response
func FromDomainHours(hours *domain.OperatingHours) *HoursResponse {
	return &HoursResponse{
		ID:           hours.ID,
		RestaurantID: hours.RestaurantID,
		DayOfWeek:    int(hours.DayOfWeek),
		OpenTime:     string(hours.OpenTime),
		CloseTime:    string(hours.CloseTime),
		IsOpen:       hours.IsOpen,
		IsOvernight:  hours.IsOvernight,
	}
}

// FromDomainHoursList конвертирует слайс domain рабочих часов в response
func FromDomainHoursList(schedule []*domain.OperatingHours) *WeekScheduleResponse {
	days := make([]HoursResponse, 0, len(schedule))
	for _, hours := range schedule {
		days = append(days, *FromDomainHours(hours))
	}
	return &WeekScheduleResponse{Days: days}
}

// FromDomainBlock конвертирует domain блокировку в response
func FromDomainBlock(block *domain.AvailabilityBlock) *BlockResponse {
	return &BlockResponse{
		ID:           block.ID,
		RestaurantID: block.RestaurantID,
		TableID:      block.TableID,
		StartTime:    block.StartTime,
		EndTime:      block.EndTime,
		Reason:       block.Reason,
		BlockType:    string(block.BlockType),
	}
}

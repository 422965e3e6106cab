package models

import (
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

// FindBestTableRequest запрос на подбор наилучшего столика
type FindBestTableRequest struct {
	RestaurantID int64     `json:"restaurantId"`
	StartTime    time.Time `json:"startTime"`
	PartySize    int       `json:"partySize"`
}

// TableResponse данные столика
type TableResponse struct {
	ID          int64  `json:"id"`
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
}

// FindBestTableResponse результат подбора столика
// Found=false означает, что ни один столик не подошел - это вердикт, не ошибка
type FindBestTableResponse struct {
	Found bool           `json:"found"`
	Table *TableResponse `json:"table,omitempty"`
}

// AvailableTablesResponse список доступных столиков
type AvailableTablesResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTable конвертирует domain столик в response
func FromDomainTable(table *domain.Table) *TableResponse {
	return &TableResponse{
		ID:          table.ID,
		TableNumber: table.TableNumber,
		Capacity:    table.Capacity,
		Status:      string(table.Status),
	}
}

// FromDomainTableList конвертирует слайс domain столиков в response
func FromDomainTableList(tables []*domain.Table) *AvailableTablesResponse {
	responses := make([]TableResponse, 0, len(tables))
	for _, table := range tables {
		responses = append(responses, *FromDomainTable(table))
	}
	return &AvailableTablesResponse{Tables: responses}
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// BlockType derived kind of an availability block
type BlockType string

const (
	// BlockTypeTableMaintenance блокировка одного столика
	BlockTypeTableMaintenance BlockType = "table_maintenance"
	// BlockTypeRestaurantClosure блокировка всего ресторана
	BlockTypeRestaurantClosure BlockType = "restaurant_closure"
)

// AvailabilityBlock окно исключения [StartTime, EndTime) поверх обычных
// рабочих часов: техобслуживание столика или закрытие ресторана
// Тип выводится из наличия TableID и после создания не меняется
type AvailabilityBlock struct {
	ID           int64
	RestaurantID int64
	TableID      *int64 // nil = блокировка всего ресторана
	StartTime    time.Time
	EndTime      time.Time
	Reason       string
	BlockType    BlockType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAvailabilityBlock создает блокировку с проверкой локальных инвариантов
func NewAvailabilityBlock(restaurantID int64, tableID *int64, startTime, endTime time.Time, reason string) (*AvailabilityBlock, error) {
	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurant id", ErrInvalidID)
	}
	if tableID != nil && *tableID <= 0 {
		return nil, fmt.Errorf("%w: table id", ErrInvalidID)
	}
	if err := validateBlockPeriod(startTime, endTime); err != nil {
		return nil, err
	}
	if err := validateBlockReason(reason); err != nil {
		return nil, err
	}

	blockType := BlockTypeRestaurantClosure
	if tableID != nil {
		blockType = BlockTypeTableMaintenance
	}

	return &AvailabilityBlock{
		RestaurantID: restaurantID,
		TableID:      tableID,
		StartTime:    startTime,
		EndTime:      endTime,
		Reason:       reason,
		BlockType:    blockType,
	}, nil
}

// UpdatePeriod меняет окно блокировки, диапазон перевалидируется
func (b *AvailabilityBlock) UpdatePeriod(startTime, endTime time.Time) error {
	if err := validateBlockPeriod(startTime, endTime); err != nil {
		return err
	}
	b.StartTime = startTime
	b.EndTime = endTime
	return nil
}

// UpdateReason меняет причину блокировки, текст перевалидируется
func (b *AvailabilityBlock) UpdateReason(reason string) error {
	if err := validateBlockReason(reason); err != nil {
		return err
	}
	b.Reason = reason
	return nil
}

// ConflictsWith возвращает true, если блокировка пересекается с окном
// [start, end) по полуоткрытому правилу: касание границ не пересечение
func (b *AvailabilityBlock) ConflictsWith(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// IsActiveAt возвращает true, если момент времени попадает внутрь блокировки
func (b *AvailabilityBlock) IsActiveAt(t time.Time) bool {
	return !t.Before(b.StartTime) && t.Before(b.EndTime)
}

// AppliesToTable возвращает true, если блокировка затрагивает указанный столик:
// либо она ресторанная, либо помечена тем же столиком
func (b *AvailabilityBlock) AppliesToTable(tableID int64) bool {
	return b.TableID == nil || *b.TableID == tableID
}

func validateBlockPeriod(startTime, endTime time.Time) error {
	if !endTime.After(startTime) {
		return fmt.Errorf("%w: block period", ErrInvalidTimeRange)
	}
	return nil
}

func validateBlockReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: block reason", ErrEmptyField)
	}
	if len(reason) > MaxBlockReasonLength {
		return fmt.Errorf("%w: block reason exceeds %d characters", ErrFieldTooLong, MaxBlockReasonLength)
	}
	return nil
}

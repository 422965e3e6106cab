package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtrv/RB-ReservationService/pkg/ptr"
)

func blockTime(hour, min int) time.Time {
	return time.Date(2026, time.March, 2, hour, min, 0, 0, time.UTC)
}

func TestNewAvailabilityBlock_DerivesType(t *testing.T) {
	restaurantWide, err := NewAvailabilityBlock(1, nil, blockTime(10, 0), blockTime(12, 0), "private event")
	require.NoError(t, err)
	assert.Equal(t, BlockTypeRestaurantClosure, restaurantWide.BlockType)

	single, err := NewAvailabilityBlock(1, ptr.Ptr(int64(7)), blockTime(10, 0), blockTime(12, 0), "broken leg")
	require.NoError(t, err)
	assert.Equal(t, BlockTypeTableMaintenance, single.BlockType)
}

func TestNewAvailabilityBlock_Invariants(t *testing.T) {
	_, err := NewAvailabilityBlock(0, nil, blockTime(10, 0), blockTime(12, 0), "x")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewAvailabilityBlock(1, ptr.Ptr(int64(0)), blockTime(10, 0), blockTime(12, 0), "x")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewAvailabilityBlock(1, nil, blockTime(12, 0), blockTime(10, 0), "x")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = NewAvailabilityBlock(1, nil, blockTime(10, 0), blockTime(10, 0), "x")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = NewAvailabilityBlock(1, nil, blockTime(10, 0), blockTime(12, 0), "   ")
	assert.ErrorIs(t, err, ErrEmptyField)
}

func TestAvailabilityBlock_ConflictsWith(t *testing.T) {
	// Блокировка [10:00, 12:00)
	b, err := NewAvailabilityBlock(1, nil, blockTime(10, 0), blockTime(12, 0), "maintenance")
	require.NoError(t, err)

	assert.True(t, b.ConflictsWith(blockTime(11, 30), blockTime(13, 0)))
	assert.True(t, b.ConflictsWith(blockTime(9, 0), blockTime(10, 1)))
	// Касание границ по полуоткрытому правилу - не конфликт
	assert.False(t, b.ConflictsWith(blockTime(8, 0), blockTime(10, 0)))
	assert.False(t, b.ConflictsWith(blockTime(12, 0), blockTime(14, 0)))
}

func TestAvailabilityBlock_IsActiveAt(t *testing.T) {
	b, err := NewAvailabilityBlock(1, nil, blockTime(10, 0), blockTime(12, 0), "maintenance")
	require.NoError(t, err)

	assert.True(t, b.IsActiveAt(blockTime(10, 0)))
	assert.True(t, b.IsActiveAt(blockTime(11, 59)))
	assert.False(t, b.IsActiveAt(blockTime(12, 0)))
	assert.False(t, b.IsActiveAt(blockTime(9, 59)))
}

func TestAvailabilityBlock_AppliesToTable(t *testing.T) {
	restaurantWide, err := NewAvailabilityBlock(1, nil, blockTime(10, 0), blockTime(12, 0), "closure")
	require.NoError(t, err)
	assert.True(t, restaurantWide.AppliesToTable(1))
	assert.True(t, restaurantWide.AppliesToTable(99))

	single, err := NewAvailabilityBlock(1, ptr.Ptr(int64(7)), blockTime(10, 0), blockTime(12, 0), "maintenance")
	require.NoError(t, err)
	assert.True(t, single.AppliesToTable(7))
	assert.False(t, single.AppliesToTable(8))
}

func TestAvailabilityBlock_UpdatesRevalidate(t *testing.T) {
	b, err := NewAvailabilityBlock(1, nil, blockTime(10, 0), blockTime(12, 0), "maintenance")
	require.NoError(t, err)

	assert.ErrorIs(t, b.UpdatePeriod(blockTime(14, 0), blockTime(13, 0)), ErrInvalidTimeRange)
	assert.ErrorIs(t, b.UpdateReason(""), ErrEmptyField)

	// Неудачные обновления не трогают состояние
	assert.Equal(t, blockTime(10, 0), b.StartTime)
	assert.Equal(t, "maintenance", b.Reason)

	require.NoError(t, b.UpdatePeriod(blockTime(13, 0), blockTime(15, 0)))
	require.NoError(t, b.UpdateReason("deep cleaning"))
	assert.Equal(t, blockTime(13, 0), b.StartTime)
	assert.Equal(t, "deep cleaning", b.Reason)
	// Тип не меняется после создания
	assert.Equal(t, BlockTypeRestaurantClosure, b.BlockType)
}

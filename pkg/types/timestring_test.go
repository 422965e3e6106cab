package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30pm")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString_FromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2026, time.March, 2, 21, 5, 59, 0, time.UTC))
	assert.Equal(t, "21:05", ts.String())
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 9*60+30, TimeString("09:30").Minutes())
	assert.Equal(t, 23*60+59, TimeString("23:59").Minutes())
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("22:00").IsAfter("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(180)
	require.NoError(t, err)
	assert.Equal(t, "12:30", ts.String())

	// Переход через полночь считается переполнением суток
	_, err = TimeString("22:30").AddMinutes(180)
	assert.ErrorIs(t, err, ErrTimeOverflowsDay)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.Error(t, TimeString("").Validate())
	assert.Error(t, TimeString("noon").Validate())
}

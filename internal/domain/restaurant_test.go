package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRestaurant(t *testing.T) *Restaurant {
	t.Helper()
	r, err := NewRestaurant(1, "Trattoria Nonna", "italian", "family-run trattoria", "12 Via Roma", "+39 055 123456")
	require.NoError(t, err)
	return r
}

func TestNewRestaurant_Invariants(t *testing.T) {
	r := newTestRestaurant(t)
	assert.Equal(t, RestaurantStatusActive, r.Status)

	_, err := NewRestaurant(0, "Trattoria Nonna", "italian", "d", "a", "+39 055 123456")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewRestaurant(1, "", "italian", "d", "a", "+39 055 123456")
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = NewRestaurant(1, "ab", "italian", "d", "a", "+39 055 123456")
	assert.ErrorIs(t, err, ErrNameLength)
}

func TestRestaurant_StatusMachine(t *testing.T) {
	r := newTestRestaurant(t)

	// Active ⇄ Inactive свободно
	require.NoError(t, r.UpdateStatus(RestaurantStatusInactive))
	require.NoError(t, r.UpdateStatus(RestaurantStatusActive))

	// Active → Suspended разрешено, Suspended → Active нет
	require.NoError(t, r.UpdateStatus(RestaurantStatusSuspended))
	err := r.UpdateStatus(RestaurantStatusActive)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, RestaurantStatusSuspended, r.Status)

	// Выход из Suspended только через Inactive
	require.NoError(t, r.UpdateStatus(RestaurantStatusInactive))
	require.NoError(t, r.UpdateStatus(RestaurantStatusActive))
}

func TestRestaurant_UpdateStatusUnknown(t *testing.T) {
	r := newTestRestaurant(t)
	assert.ErrorIs(t, r.UpdateStatus("archived"), ErrInvalidStatus)
}

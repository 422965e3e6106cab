package domain

// Default booking policy values
const (
	// DefaultReservationDurationMinutes фиксированная длительность брони (3 часа)
	DefaultReservationDurationMinutes = 180

	// DefaultMinLeadTimeMinutes минимальный зазор между "сейчас" и началом брони
	DefaultMinLeadTimeMinutes = 60
)

// Business validation constants
const (
	MinRestaurantNameLength   = 3
	MaxRestaurantNameLength   = 100
	MaxSpecialRequestsLength  = 500
	MaxBlockReasonLength      = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

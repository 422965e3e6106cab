package create_reservation

import (
	"fmt"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if len(req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests exceed %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// checkLeadTime проверяет минимальное время заблаговременности брони
// Начало должно быть строго больше чем now + minLeadTime
func checkLeadTime(start, now time.Time, minLeadTime time.Duration) []string {
	if !start.After(now.Add(minLeadTime)) {
		return []string{ReasonInsufficientLead}
	}
	return nil
}

// checkTableFits проверяет принадлежность столика ресторану и его вместимость
func checkTableFits(table *domain.Table, restaurantID int64, partySize int) []string {
	reasons := make([]string, 0, 2)

	if table.RestaurantID != restaurantID {
		reasons = append(reasons, ReasonTableWrongRestaurant)
	}
	if !table.CanSeat(partySize) {
		reasons = append(reasons, ReasonInsufficientCapacity)
	}

	return reasons
}

// checkOperatingHours проверяет, что бронь целиком помещается в рабочие часы
// hours == nil означает отсутствие записи расписания — день считается закрытым
// Возвращает не более одной причины: закрытый день, начало вне окна работы
// или выход брони за время закрытия
func checkOperatingHours(hours *domain.OperatingHours, start time.Time, durationMinutes int) []string {
	if hours == nil || !hours.IsOpen {
		return []string{ReasonClosedDay}
	}

	startOfDay := types.NewTimeString(start)
	if !hours.IsWithinOperatingHours(startOfDay) {
		return []string{ReasonOutsideHours}
	}
	if !hours.FitsReservationWindow(startOfDay, durationMinutes) {
		return []string{ReasonBeyondClosing}
	}

	return nil
}

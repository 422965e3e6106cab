package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	hoursRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/operatinghours"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// UseCase use case проверки доступности столика на временное окно
// Выполняет три независимые проверки (рабочие часы, конфликтующие брони,
// блокировки) и собирает ВСЕ сработавшие причины, не прерываясь на первой
type UseCase struct {
	reservationRepo ReservationRepository
	hoursRepo       OperatingHoursRepository
	blockRepo       AvailabilityBlockRepository
	duration        time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	hoursRepo OperatingHoursRepository,
	blockRepo AvailabilityBlockRepository,
	durationMinutes int,
	logger Logger,
) *UseCase {
	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultReservationDurationMinutes
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		hoursRepo:       hoursRepo,
		blockRepo:       blockRepo,
		duration:        time.Duration(durationMinutes) * time.Minute,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	start := req.StartTime
	end := req.EndTime
	if end.IsZero() {
		end = start.Add(uc.duration)
	}

	uc.logger.Info("CheckAvailability: restaurant=%d, table=%d, window=[%s, %s)",
		req.RestaurantID, req.TableID, start.Format(time.RFC3339), end.Format(time.RFC3339))

	reasons := make([]string, 0, 3)

	// 2. Ресторан открыт в момент начала брони
	open, err := uc.isRestaurantOpen(ctx, req.RestaurantID, start)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get operating hours for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}
	if !open {
		reasons = append(reasons, ReasonRestaurantClosed)
	}

	// 3. Нет конфликтующих неотмененных броней на столик
	conflicting, err := uc.reservationRepo.GetConflicting(ctx, req.TableID, start, end)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get conflicting reservations for table=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get conflicting reservations: %v", ErrInternal, err)
	}
	if len(conflicting) > 0 {
		reasons = append(reasons, ReasonTableUnavailable)
	}

	// 4. Нет активных блокировок, затрагивающих столик в этом окне
	blocks, err := uc.blockRepo.GetOverlapping(ctx, req.RestaurantID, start, end)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get availability blocks for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get availability blocks: %v", ErrInternal, err)
	}
	if anyBlockApplies(blocks, req.TableID, start, end) {
		reasons = append(reasons, ReasonBlocked)
	}

	uc.logger.Info("CheckAvailability: restaurant=%d, table=%d, available=%t, reasons=%d",
		req.RestaurantID, req.TableID, len(reasons) == 0, len(reasons))

	return &Response{
		Available: len(reasons) == 0,
		Reasons:   reasons,
	}, nil
}

// isRestaurantOpen проверяет, что момент времени попадает в рабочие часы
// ресторана в соответствующий день недели
// Отсутствие записи рабочих часов трактуется как закрытый день
func (uc *UseCase) isRestaurantOpen(ctx context.Context, restaurantID int64, at time.Time) (bool, error) {
	hours, err := uc.hoursRepo.GetByRestaurantAndDay(ctx, restaurantID, at.Weekday())
	if err != nil {
		if errors.Is(err, hoursRepo.ErrOperatingHoursNotFound) {
			return false, nil
		}
		return false, err
	}
	return hours.IsWithinOperatingHours(types.NewTimeString(at)), nil
}

// anyBlockApplies возвращает true, если хотя бы одна блокировка затрагивает
// столик (ресторанная или помеченная этим столиком) и пересекает окно
func anyBlockApplies(blocks []*domain.AvailabilityBlock, tableID int64, start, end time.Time) bool {
	for _, block := range blocks {
		if block.AppliesToTable(tableID) && block.ConflictsWith(start, end) {
			return true
		}
	}
	return false
}

func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if !req.EndTime.IsZero() && !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	return nil
}

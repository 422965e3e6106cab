package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	customerRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/customer"
	hoursRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/operatinghours"
	restaurantRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/table"
)

// UseCase use case для создания брони столика
// Последовательный валидатор: отсутствие ресторана или столика прерывает
// проверку сразу, остальные бизнес-причины накапливаются и возвращаются
// все вместе в Response.Errors
type UseCase struct {
	reservationRepo ReservationRepository
	customerRepo    CustomerRepository
	restaurantRepo  RestaurantRepository
	tableRepo       TableRepository
	hoursRepo       OperatingHoursRepository
	txManager       TransactionManager
	duration        time.Duration
	minLeadTime     time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	customerRepo CustomerRepository,
	restaurantRepo RestaurantRepository,
	tableRepo TableRepository,
	hoursRepo OperatingHoursRepository,
	txManager TransactionManager,
	durationMinutes int,
	minLeadTimeMinutes int,
	logger Logger,
) *UseCase {
	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultReservationDurationMinutes
	}
	if minLeadTimeMinutes <= 0 {
		minLeadTimeMinutes = domain.DefaultMinLeadTimeMinutes
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		restaurantRepo:  restaurantRepo,
		tableRepo:       tableRepo,
		hoursRepo:       hoursRepo,
		txManager:       txManager,
		duration:        time.Duration(durationMinutes) * time.Minute,
		minLeadTime:     time.Duration(minLeadTimeMinutes) * time.Minute,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Проверка конфликтов и запись выполняются в сериализуемой транзакции
// для предотвращения двойного бронирования столика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%d, restaurant=%d, table=%d, start=%s, party=%d",
		req.CustomerID, req.RestaurantID, req.TableID, req.StartTime.Format(time.RFC3339), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Гость должен существовать
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateReservation: customer id=%d not found", req.CustomerID)
			return failure(ReasonCustomerNotFound), nil
		}
		uc.logger.Error("CreateReservation: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Ресторан должен существовать — иначе дальнейшие проверки бессмысленны
	if _, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateReservation: restaurant id=%d not found", req.RestaurantID)
			return failure(ReasonRestaurantNotFound), nil
		}
		uc.logger.Error("CreateReservation: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 5. Столик должен существовать
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateReservation: table id=%d not found", req.TableID)
			return failure(ReasonTableNotFound), nil
		}
		uc.logger.Error("CreateReservation: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	// 6. Накапливаем все причины отказа, не прерываясь на первой
	reasons := make([]string, 0, 4)
	reasons = append(reasons, checkLeadTime(req.StartTime, now, uc.minLeadTime)...)
	reasons = append(reasons, checkTableFits(table, req.RestaurantID, req.PartySize)...)

	end := req.StartTime.Add(uc.duration)
	var result *domain.Reservation

	// 7. Рабочие часы, конфликты и запись — в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Рабочие часы на день недели начала брони
		hours, err := uc.hoursRepo.GetByRestaurantAndDay(txCtx, req.RestaurantID, req.StartTime.Weekday())
		if err != nil && !errors.Is(err, hoursRepo.ErrOperatingHoursNotFound) {
			uc.logger.Error("CreateReservation: failed to get operating hours: %v", err)
			return fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
		}
		reasons = append(reasons, checkOperatingHours(hours, req.StartTime, int(uc.duration.Minutes()))...)

		// 7.2. Конфликтующие брони столика с блокировкой строк (FOR UPDATE)
		conflicting, err := uc.reservationRepo.GetConflicting(txCtx, req.TableID, req.StartTime, end)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get conflicting reservations: %v", err)
			return fmt.Errorf("%w: failed to get conflicting reservations: %v", ErrInternal, err)
		}
		if len(conflicting) > 0 {
			reasons = append(reasons, ReasonTableUnavailable)
		}

		// 7.3. При любой причине отказа бронь не создается
		if len(reasons) > 0 {
			return nil
		}

		// 7.4. Создаем бронь с проверкой локальных инвариантов
		reservation, err := domain.NewReservation(
			req.CustomerID,
			req.RestaurantID,
			req.TableID,
			req.StartTime,
			req.PartySize,
			req.SpecialRequests,
			now,
			uc.minLeadTime,
			uc.duration,
		)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to build reservation: %v", err)
			return fmt.Errorf("%w: failed to build reservation: %v", ErrInternal, err)
		}

		// 7.5. Сохраняем бронь
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(reasons) > 0 {
		uc.logger.Warn("CreateReservation: rejected, reasons=%d", len(reasons))
		return failure(reasons...), nil
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		Success: true,
		Reservation: &CreatedReservation{
			ID:              result.ID,
			CustomerID:      result.CustomerID,
			RestaurantID:    result.RestaurantID,
			TableID:         result.TableID,
			StartTime:       result.StartTime,
			EndTime:         result.EndTime,
			PartySize:       result.PartySize,
			SpecialRequests: result.SpecialRequests,
			Status:          string(result.Status),
			CreatedAt:       result.CreatedAt,
			UpdatedAt:       result.UpdatedAt,
		},
	}, nil
}

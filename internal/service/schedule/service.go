package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	blockRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/availabilityblock"
	hoursRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/operatinghours"
	restaurantRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/table"
	"github.com/dmtrv/RB-ReservationService/internal/service/schedule/models"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// Service сервис управления расписанием ресторана:
// рабочие часы по дням недели и блокировки доступности
type Service struct {
	hoursRepo      OperatingHoursRepository
	blockRepo      AvailabilityBlockRepository
	restaurantRepo RestaurantRepository
	tableRepo      TableRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	hoursRepo OperatingHoursRepository,
	blockRepo AvailabilityBlockRepository,
	restaurantRepo RestaurantRepository,
	tableRepo TableRepository,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo:      hoursRepo,
		blockRepo:      blockRepo,
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		logger:         logger,
	}
}

// SetHours полностью заменяет рабочие часы дня недели
// Частичных правок нет: день либо получает новое окно целиком, либо
// схлопывается в закрытый (IsClosed=true)
// Если записи на день еще нет, она создается
func (s *Service) SetHours(ctx context.Context, req *models.SetHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("SetHours: restaurant=%d, day=%d, closed=%t", req.RestaurantID, req.DayOfWeek, req.IsClosed)

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be 0-6", ErrInvalidInput)
	}

	if err := s.checkRestaurantExists(ctx, req.RestaurantID); err != nil {
		return nil, err
	}

	day := time.Weekday(req.DayOfWeek)
	existing, err := s.hoursRepo.GetByRestaurantAndDay(ctx, req.RestaurantID, day)
	if err != nil && !errors.Is(err, hoursRepo.ErrOperatingHoursNotFound) {
		s.logger.Error("SetHours: failed to get hours for restaurant=%d day=%d: %v", req.RestaurantID, req.DayOfWeek, err)
		return nil, fmt.Errorf("%w: SetHours - repository error: %v", ErrInternal, err)
	}

	// Записи на день нет - создаем новую
	if existing == nil {
		created, err := s.createHours(ctx, req, day)
		if err != nil {
			return nil, err
		}
		return models.FromDomainHours(created), nil
	}

	// Запись есть - заменяем окно или схлопываем день
	if req.IsClosed {
		existing.SetClosed()
	} else {
		if err := existing.UpdateHours(types.TimeString(req.OpenTime), types.TimeString(req.CloseTime), req.IsOvernight); err != nil {
			s.logger.Warn("SetHours: invalid hours for restaurant=%d day=%d: %v", req.RestaurantID, req.DayOfWeek, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := s.hoursRepo.Update(ctx, existing); err != nil {
		s.logger.Error("SetHours: failed to update hours id=%d: %v", existing.ID, err)
		return nil, fmt.Errorf("%w: SetHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetHours: updated hours id=%d for restaurant=%d day=%d", existing.ID, req.RestaurantID, req.DayOfWeek)
	return models.FromDomainHours(existing), nil
}

// GetWeekSchedule возвращает недельное расписание ресторана
func (s *Service) GetWeekSchedule(ctx context.Context, restaurantID int64) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetWeekSchedule: restaurant=%d", restaurantID)

	if err := s.checkRestaurantExists(ctx, restaurantID); err != nil {
		return nil, err
	}

	schedule, err := s.hoursRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetWeekSchedule: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetWeekSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHoursList(schedule), nil
}

// CreateBlock создает блокировку доступности
// Тип блокировки выводится из наличия столика: с TableID это техобслуживание
// столика, без него - закрытие всего ресторана
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: restaurant=%d, table=%v, window=[%s, %s)",
		req.RestaurantID, req.TableID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	if err := s.checkRestaurantExists(ctx, req.RestaurantID); err != nil {
		return nil, err
	}

	if req.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				s.logger.Warn("CreateBlock: table id=%d not found", *req.TableID)
				return nil, ErrTableNotFound
			}
			s.logger.Error("CreateBlock: failed to get table id=%d: %v", *req.TableID, err)
			return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
		}
		if table.RestaurantID != req.RestaurantID {
			s.logger.Warn("CreateBlock: table id=%d belongs to restaurant=%d, not %d",
				*req.TableID, table.RestaurantID, req.RestaurantID)
			return nil, ErrTableWrongRestaurant
		}
	}

	block, err := domain.NewAvailabilityBlock(req.RestaurantID, req.TableID, req.StartTime, req.EndTime, req.Reason)
	if err != nil {
		s.logger.Warn("CreateBlock: invalid block for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: failed to create block for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: created block id=%d type=%s", created.ID, created.BlockType)
	return models.FromDomainBlock(created), nil
}

// UpdateBlock меняет окно и причину блокировки с перевалидацией
// Тип блокировки после создания не меняется
func (s *Service) UpdateBlock(ctx context.Context, req *models.UpdateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("UpdateBlock: block=%d", req.BlockID)

	block, err := s.blockRepo.GetByID(ctx, req.BlockID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("UpdateBlock: block id=%d not found", req.BlockID)
			return nil, ErrBlockNotFound
		}
		s.logger.Error("UpdateBlock: failed to get block id=%d: %v", req.BlockID, err)
		return nil, fmt.Errorf("%w: UpdateBlock - repository error: %v", ErrInternal, err)
	}

	if err := block.UpdatePeriod(req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("UpdateBlock: invalid period for block id=%d: %v", req.BlockID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := block.UpdateReason(req.Reason); err != nil {
		s.logger.Warn("UpdateBlock: invalid reason for block id=%d: %v", req.BlockID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.blockRepo.Update(ctx, block); err != nil {
		s.logger.Error("UpdateBlock: failed to update block id=%d: %v", req.BlockID, err)
		return nil, fmt.Errorf("%w: UpdateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBlock: updated block id=%d", req.BlockID)
	return models.FromDomainBlock(block), nil
}

// DeleteBlock удаляет блокировку
func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlock: block=%d", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: failed to delete block id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	return nil
}

// createHours создает новую запись рабочих часов для дня
func (s *Service) createHours(ctx context.Context, req *models.SetHoursRequest, day time.Weekday) (*domain.OperatingHours, error) {
	var hours *domain.OperatingHours
	var err error

	if req.IsClosed {
		hours, err = domain.NewClosedDay(req.RestaurantID, day)
	} else {
		hours, err = domain.NewOperatingHours(req.RestaurantID, day,
			types.TimeString(req.OpenTime), types.TimeString(req.CloseTime), req.IsOvernight)
	}
	if err != nil {
		s.logger.Warn("createHours: invalid hours for restaurant=%d day=%d: %v", req.RestaurantID, req.DayOfWeek, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.hoursRepo.Create(ctx, hours)
	if err != nil {
		s.logger.Error("createHours: failed to create hours for restaurant=%d day=%d: %v", req.RestaurantID, req.DayOfWeek, err)
		return nil, fmt.Errorf("%w: createHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("createHours: created hours id=%d for restaurant=%d day=%d", created.ID, req.RestaurantID, req.DayOfWeek)
	return created, nil
}

// checkRestaurantExists проверяет существование ресторана
func (s *Service) checkRestaurantExists(ctx context.Context, restaurantID int64) error {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("checkRestaurantExists: restaurant id=%d not found", restaurantID)
			return ErrRestaurantNotFound
		}
		s.logger.Error("checkRestaurantExists: repository error for restaurant=%d: %v", restaurantID, err)
		return fmt.Errorf("%w: checkRestaurantExists - repository error: %v", ErrInternal, err)
	}
	return nil
}

package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	restaurantRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/restaurant"
	"github.com/dmtrv/RB-ReservationService/internal/service/assignment/models"
)

// Service сервис подбора столиков
// Линейный проход по столикам ресторана: отбрасываются столики с недостаточной
// вместимостью, для остальных выполняется запрос конфликтующих броней на окно
// [start, start+длительность). Репозиторий возвращает столики в порядке
// (вместимость ASC, номер ASC), поэтому первый доступный столик и есть
// наилучший: минимальная достаточная вместимость, при равенстве - меньший номер
type Service struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	restaurantRepo  RestaurantRepository
	duration        time.Duration
	logger          Logger
}

// NewService создает новый экземпляр сервиса подбора столиков
func NewService(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	restaurantRepo RestaurantRepository,
	durationMinutes int,
	logger Logger,
) *Service {
	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultReservationDurationMinutes
	}
	return &Service{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		duration:        time.Duration(durationMinutes) * time.Minute,
		logger:          logger,
	}
}

// FindBestTable подбирает наилучший доступный столик под компанию
// Возвращает Found=false, если ни один столик не подошел
func (s *Service) FindBestTable(ctx context.Context, req *models.FindBestTableRequest) (*models.FindBestTableResponse, error) {
	s.logger.Info("FindBestTable: restaurant=%d, start=%s, party=%d",
		req.RestaurantID, req.StartTime.Format(time.RFC3339), req.PartySize)

	available, err := s.availableTables(ctx, req.RestaurantID, req.StartTime, req.PartySize)
	if err != nil {
		return nil, err
	}

	if len(available) == 0 {
		s.logger.Info("FindBestTable: no table available for restaurant=%d, party=%d", req.RestaurantID, req.PartySize)
		return &models.FindBestTableResponse{Found: false}, nil
	}

	best := available[0]
	s.logger.Info("FindBestTable: selected table id=%d, number=%s, capacity=%d",
		best.ID, best.TableNumber, best.Capacity)

	return &models.FindBestTableResponse{
		Found: true,
		Table: models.FromDomainTable(best),
	}, nil
}

// GetAvailableTables возвращает все доступные столики под компанию
// в порядке возрастания вместимости
func (s *Service) GetAvailableTables(ctx context.Context, req *models.FindBestTableRequest) (*models.AvailableTablesResponse, error) {
	s.logger.Info("GetAvailableTables: restaurant=%d, start=%s, party=%d",
		req.RestaurantID, req.StartTime.Format(time.RFC3339), req.PartySize)

	available, err := s.availableTables(ctx, req.RestaurantID, req.StartTime, req.PartySize)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetAvailableTables: %d tables available for restaurant=%d", len(available), req.RestaurantID)
	return models.FromDomainTableList(available), nil
}

// availableTables возвращает столики ресторана, которые вмещают компанию и
// не имеют конфликтующих броней на окно [start, start+duration)
// Порядок сохраняется от репозитория: вместимость ASC, номер столика ASC
func (s *Service) availableTables(ctx context.Context, restaurantID int64, start time.Time, partySize int) ([]*domain.Table, error) {
	if err := s.validateQuery(restaurantID, start, partySize); err != nil {
		return nil, err
	}

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("availableTables: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("availableTables: failed to get restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	tables, err := s.tableRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.logger.Error("availableTables: failed to get tables for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	end := start.Add(s.duration)
	available := make([]*domain.Table, 0, len(tables))

	for _, table := range tables {
		if !table.CanSeat(partySize) {
			continue
		}

		conflicting, err := s.reservationRepo.GetConflicting(ctx, table.ID, start, end)
		if err != nil {
			s.logger.Error("availableTables: failed to get conflicts for table=%d: %v", table.ID, err)
			return nil, fmt.Errorf("%w: failed to get conflicting reservations: %v", ErrInternal, err)
		}
		if len(conflicting) > 0 {
			continue
		}

		available = append(available, table)
	}

	return available, nil
}

func (s *Service) validateQuery(restaurantID int64, start time.Time, partySize int) error {
	if restaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}
	if start.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if partySize <= 0 {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}
	return nil
}

package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	reservationRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/reservation"
	"github.com/dmtrv/RB-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
// Гость может видеть только свою бронь
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for customer=%d", id, customerID)

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if reservation.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to reservation id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetByCustomer получает историю броней гостя
// Опционально фильтрует по статусу
func (s *Service) GetByCustomer(ctx context.Context, customerID int64, status *string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByCustomer: fetching reservations for customer=%d, status=%v", customerID, status)

	var domainStatus *domain.ReservationStatus
	if status != nil {
		converted, err := models.ToDomainReservationStatus(*status)
		if err != nil {
			s.logger.Warn("GetByCustomer: invalid status=%s for customer=%d", *status, customerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &converted
	}

	reservations, err := s.reservationRepo.GetByCustomerID(ctx, customerID, domainStatus)
	if err != nil {
		s.logger.Error("GetByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCustomer: successfully fetched %d reservations for customer=%d", len(reservations), customerID)
	return models.FromDomainReservationList(reservations), nil
}

// GetByRestaurant получает брони ресторана с гибкой фильтрацией
// Поддерживает фильтрацию по столику, периоду, статусу и включению отмененных
func (s *Service) GetByRestaurant(ctx context.Context, req *models.GetRestaurantReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByRestaurant: fetching reservations for restaurant=%d", req.RestaurantID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetByRestaurant: invalid filter for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByRestaurant: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetByRestaurant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRestaurant: successfully fetched %d reservations for restaurant=%d", len(reservations), req.RestaurantID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронь гостя
// Переход выполняется машиной статусов домена: отмена из терминального
// статуса отклоняется
func (s *Service) Cancel(ctx context.Context, id int64, customerID int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d for customer=%d", id, customerID)

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if reservation.CustomerID != customerID {
		s.logger.Warn("Cancel: access denied for customer=%d to reservation id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	return s.transition(ctx, reservation, domain.ReservationStatusCancelled)
}

// Complete помечает бронь завершенной (гость пришел и ушел)
func (s *Service) Complete(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Complete: completing reservation id=%d", id)

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, reservation, domain.ReservationStatusCompleted)
}

// MarkNoShow помечает бронь как неявку гостя
func (s *Service) MarkNoShow(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("MarkNoShow: marking reservation id=%d as no-show", id)

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, reservation, domain.ReservationStatusNoShow)
}

// fetch получает бронь по ID с трансляцией ошибки хранилища
func (s *Service) fetch(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("fetch: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("fetch: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: fetch - repository error: %v", ErrInternal, err)
	}
	return reservation, nil
}

// transition выполняет переход статуса в домене и персистит результат
func (s *Service) transition(ctx context.Context, reservation *domain.Reservation, status domain.ReservationStatus) (*models.ReservationResponse, error) {
	if err := reservation.UpdateStatus(status); err != nil {
		s.logger.Warn("transition: reservation id=%d cannot move from %s to %s: %v",
			reservation.ID, reservation.Status, status, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservation.ID, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("transition: failed to update status for reservation id=%d: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("transition: reservation id=%d moved to %s", reservation.ID, status)
	return models.FromDomainReservation(reservation), nil
}

package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
	customerRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/customer"
	restaurantRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/table"
	"github.com/dmtrv/RB-ReservationService/internal/service/directory/models"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// Service справочник ресторанов, столиков и гостей:
// регистрация и смена статусов, поверх которых работает бронирование
type Service struct {
	restaurantRepo RestaurantRepository
	tableRepo      TableRepository
	customerRepo   CustomerRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(
	restaurantRepo RestaurantRepository,
	tableRepo TableRepository,
	customerRepo CustomerRepository,
	logger Logger,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		customerRepo:   customerRepo,
		logger:         logger,
	}
}

// CreateRestaurant регистрирует ресторан
func (s *Service) CreateRestaurant(ctx context.Context, req *models.CreateRestaurantRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("CreateRestaurant: owner=%d, name=%s", req.OwnerID, req.Name)

	phone, err := types.NewPhone(req.Phone)
	if err != nil {
		s.logger.Warn("CreateRestaurant: invalid phone: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	restaurant, err := domain.NewRestaurant(req.OwnerID, req.Name, req.CuisineType, req.Description, req.Address, phone)
	if err != nil {
		s.logger.Warn("CreateRestaurant: invalid restaurant: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.restaurantRepo.Create(ctx, restaurant)
	if err != nil {
		s.logger.Error("CreateRestaurant: failed to create restaurant: %v", err)
		return nil, fmt.Errorf("%w: CreateRestaurant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRestaurant: created restaurant id=%d", created.ID)
	return models.FromDomainRestaurant(created), nil
}

// UpdateRestaurantStatus выполняет переход статуса ресторана
// Active ⇄ Inactive свободно, Suspended → Active запрещен
func (s *Service) UpdateRestaurantStatus(ctx context.Context, restaurantID int64, status string) (*models.RestaurantResponse, error) {
	s.logger.Info("UpdateRestaurantStatus: restaurant=%d, status=%s", restaurantID, status)

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("UpdateRestaurantStatus: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("UpdateRestaurantStatus: failed to get restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: UpdateRestaurantStatus - repository error: %v", ErrInternal, err)
	}

	if err := restaurant.UpdateStatus(domain.RestaurantStatus(status)); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			s.logger.Warn("UpdateRestaurantStatus: restaurant id=%d cannot move to %s: %v", restaurantID, status, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		s.logger.Warn("UpdateRestaurantStatus: invalid status %q: %v", status, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		s.logger.Error("UpdateRestaurantStatus: failed to update restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: UpdateRestaurantStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRestaurantStatus: restaurant id=%d moved to %s", restaurantID, status)
	return models.FromDomainRestaurant(restaurant), nil
}

// CreateTable добавляет столик в ресторан
// Уникальность номера в пределах ресторана обеспечивает хранилище
func (s *Service) CreateTable(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("CreateTable: restaurant=%d, number=%s, capacity=%d", req.RestaurantID, req.TableNumber, req.Capacity)

	if _, err := s.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("CreateTable: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("CreateTable: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: CreateTable - repository error: %v", ErrInternal, err)
	}

	table, err := domain.NewTable(req.RestaurantID, req.TableNumber, req.Capacity)
	if err != nil {
		s.logger.Warn("CreateTable: invalid table: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		s.logger.Error("CreateTable: failed to create table: %v", err)
		return nil, fmt.Errorf("%w: CreateTable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTable: created table id=%d for restaurant=%d", created.ID, req.RestaurantID)
	return models.FromDomainTable(created), nil
}

// SetTableStatus меняет статус столика (available/occupied/reserved/out_of_service)
func (s *Service) SetTableStatus(ctx context.Context, tableID int64, status string) error {
	s.logger.Info("SetTableStatus: table=%d, status=%s", tableID, status)

	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("SetTableStatus: table id=%d not found", tableID)
			return ErrTableNotFound
		}
		s.logger.Error("SetTableStatus: failed to get table id=%d: %v", tableID, err)
		return fmt.Errorf("%w: SetTableStatus - repository error: %v", ErrInternal, err)
	}

	if err := table.UpdateStatus(domain.TableStatus(status)); err != nil {
		s.logger.Warn("SetTableStatus: invalid status %q: %v", status, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tableRepo.UpdateStatus(ctx, tableID, table.Status); err != nil {
		s.logger.Error("SetTableStatus: failed to update table id=%d: %v", tableID, err)
		return fmt.Errorf("%w: SetTableStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// RegisterCustomer регистрирует гостя
// Email нормализуется к нижнему регистру, занятый email отклоняется
func (s *Service) RegisterCustomer(ctx context.Context, req *models.RegisterCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("RegisterCustomer: email=%s", req.Email)

	email, err := types.NewEmail(req.Email)
	if err != nil {
		s.logger.Warn("RegisterCustomer: invalid email: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	phone, err := types.NewPhone(req.Phone)
	if err != nil {
		s.logger.Warn("RegisterCustomer: invalid phone: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}

	customer, err := domain.NewCustomer(req.FirstName, req.LastName, email, phone)
	if err != nil {
		s.logger.Warn("RegisterCustomer: invalid customer: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		s.logger.Error("RegisterCustomer: failed to create customer: %v", err)
		return nil, fmt.Errorf("%w: RegisterCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterCustomer: created customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// UpdateCustomerContact меняет email и телефон гостя
func (s *Service) UpdateCustomerContact(ctx context.Context, req *models.UpdateCustomerContactRequest) (*models.CustomerResponse, error) {
	s.logger.Info("UpdateCustomerContact: customer=%d", req.CustomerID)

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("UpdateCustomerContact: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("UpdateCustomerContact: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: UpdateCustomerContact - repository error: %v", ErrInternal, err)
	}

	email, err := types.NewEmail(req.Email)
	if err != nil {
		s.logger.Warn("UpdateCustomerContact: invalid email: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	phone, err := types.NewPhone(req.Phone)
	if err != nil {
		s.logger.Warn("UpdateCustomerContact: invalid phone: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if email != customer.Email {
		if err := s.checkEmailFree(ctx, email); err != nil {
			return nil, err
		}
	}

	if err := customer.UpdateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := customer.UpdatePhone(phone); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		s.logger.Error("UpdateCustomerContact: failed to update customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: UpdateCustomerContact - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCustomerContact: updated customer id=%d", req.CustomerID)
	return models.FromDomainCustomer(customer), nil
}

// checkEmailFree возвращает ErrEmailTaken, если email уже зарегистрирован
func (s *Service) checkEmailFree(ctx context.Context, email types.Email) error {
	_, err := s.customerRepo.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Warn("checkEmailFree: email %s is already registered", email)
		return ErrEmailTaken
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("checkEmailFree: repository error: %v", err)
		return fmt.Errorf("%w: checkEmailFree - repository error: %v", ErrInternal, err)
	}
	return nil
}

package restaurant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dmtrv/RB-ReservationService/internal/domain"
	"github.com/dmtrv/RB-ReservationService/pkg/dbmetrics"
	"github.com/dmtrv/RB-ReservationService/pkg/psqlbuilder"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// Repository репозиторий для работы с ресторанами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает ресторан
func (r *Repository) Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurants").
		Columns(
			"owner_id",
			"name",
			"cuisine_type",
			"description",
			"address",
			"phone",
			"status",
		).
		Values(
			restaurant.OwnerID,
			restaurant.Name,
			restaurant.CuisineType,
			restaurant.Description,
			restaurant.Address,
			string(restaurant.Phone),
			restaurant.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return restaurant, nil
}

// GetByID получает ресторан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var restaurant domain.Restaurant
	var phone string
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.OwnerID,
		&restaurant.Name,
		&restaurant.CuisineType,
		&restaurant.Description,
		&restaurant.Address,
		&phone,
		&restaurant.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	restaurant.Phone = types.Phone(phone)
	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return &restaurant, nil
}

// Update обновляет описательные поля и статус ресторана
func (r *Repository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("restaurants").
		Set("name", restaurant.Name).
		Set("description", restaurant.Description).
		Set("address", restaurant.Address).
		Set("phone", string(restaurant.Phone)).
		Set("status", restaurant.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": restaurant.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

// restaurantColumns колонки таблицы restaurants в порядке сканирования
var restaurantColumns = []string{
	"id",
	"owner_id",
	"name",
	"cuisine_type",
	"description",
	"address",
	"phone",
	"status",
	"created_at",
	"updated_at",
}

package operatinghours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dmtrv/RB-ReservationService/internal/domain"
	"github.com/dmtrv/RB-ReservationService/pkg/dbmetrics"
	"github.com/dmtrv/RB-ReservationService/pkg/psqlbuilder"
	"github.com/dmtrv/RB-ReservationService/pkg/types"
)

// Repository репозиторий для работы с рабочими часами ресторанов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись рабочих часов для дня недели
func (r *Repository) Create(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("operating_hours").
		Columns(
			"restaurant_id",
			"day_of_week",
			"open_time",
			"close_time",
			"is_open",
			"is_overnight",
		).
		Values(
			hours.RestaurantID,
			int(hours.DayOfWeek),
			string(hours.OpenTime),
			string(hours.CloseTime),
			hours.IsOpen,
			hours.IsOvernight,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return hours, nil
}

// GetByRestaurantAndDay получает рабочие часы ресторана на день недели
// Отсутствие записи означает, что ресторан в этот день закрыт
func (r *Repository) GetByRestaurantAndDay(ctx context.Context, restaurantID int64, dayOfWeek time.Weekday) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.Eq{"day_of_week": int(dayOfWeek)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantAndDay - build select query: %v", ErrBuildQuery, err)
	}

	hours, err := r.scanHoursRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOperatingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantAndDay - scan hours: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetByRestaurantID получает полное недельное расписание ресторана
func (r *Repository) GetByRestaurantID(ctx context.Context, restaurantID int64) ([]*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make([]*domain.OperatingHours, 0)
	for rows.Next() {
		hours, err := r.scanHoursRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByRestaurantID - scan row: %v", ErrScanRow, err)
		}
		schedule = append(schedule, hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// Update полностью заменяет рабочие часы для дня недели
func (r *Repository) Update(ctx context.Context, hours *domain.OperatingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("operating_hours").
		Set("open_time", string(hours.OpenTime)).
		Set("close_time", string(hours.CloseTime)).
		Set("is_open", hours.IsOpen).
		Set("is_overnight", hours.IsOvernight).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": hours.ID}).
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
		return ErrOperatingHoursNotFound
	}

	return nil
}

// hoursColumns колонки таблицы operating_hours в порядке сканирования
var hoursColumns = []string{
	"id",
	"restaurant_id",
	"day_of_week",
	"open_time",
	"close_time",
	"is_open",
	"is_overnight",
	"created_at",
	"updated_at",
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanHoursRow(row rowScanner) (*domain.OperatingHours, error) {
	var hours domain.OperatingHours
	var dayOfWeek int
	var openTime, closeTime string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hours.ID,
		&hours.RestaurantID,
		&dayOfWeek,
		&openTime,
		&closeTime,
		&hours.IsOpen,
		&hours.IsOvernight,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	hours.DayOfWeek = time.Weekday(dayOfWeek)
	hours.OpenTime = types.TimeString(openTime)
	hours.CloseTime = types.TimeString(closeTime)
	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

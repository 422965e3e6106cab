package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dmtrv/RB-ReservationService/internal/domain"
	"github.com/dmtrv/RB-ReservationService/pkg/dbmetrics"
	"github.com/dmtrv/RB-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со столиками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает столик
// Уникальность номера столика в пределах ресторана обеспечивается
// ограничением UNIQUE (restaurant_id, table_number)
func (r *Repository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns(
			"restaurant_id",
			"table_number",
			"capacity",
			"status",
		).
		Values(
			table.RestaurantID,
			table.TableNumber,
			table.Capacity,
			table.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time

	return table, nil
}

// GetByID получает столик по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var table domain.Table
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.ID,
		&table.RestaurantID,
		&table.TableNumber,
		&table.Capacity,
		&table.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time

	return &table, nil
}

// GetByRestaurantID получает все столики ресторана
// Сортировка по вместимости и номеру задает детерминированный порядок
// для последующего подбора наилучшего столика
func (r *Repository) GetByRestaurantID(ctx context.Context, restaurantID int64) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("capacity ASC", "table_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// UpdateStatus обновляет статус столика
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

// tableColumns колонки таблицы tables в порядке сканирования
var tableColumns = []string{
	"id",
	"restaurant_id",
	"table_number",
	"capacity",
	"status",
	"created_at",
	"updated_at",
}

// scanTables сканирует результаты запроса в слайс столиков
func (r *Repository) scanTables(rows *sql.Rows) ([]*domain.Table, error) {
	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var table domain.Table
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&table.ID,
			&table.RestaurantID,
			&table.TableNumber,
			&table.Capacity,
			&table.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}

		table.CreatedAt = createdAt.Time
		table.UpdatedAt = updatedAt.Time

		tables = append(tables, &table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

package availabilityblock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dmtrv/RB-ReservationService/internal/domain"
	"github.com/dmtrv/RB-ReservationService/pkg/dbmetrics"
	"github.com/dmtrv/RB-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с блокировками доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку доступности
func (r *Repository) Create(ctx context.Context, block *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_blocks").
		Columns(
			"restaurant_id",
			"table_id",
			"start_time",
			"end_time",
			"reason",
			"block_type",
		).
		Values(
			block.RestaurantID,
			block.TableID,
			block.StartTime,
			block.EndTime,
			block.Reason,
			block.BlockType,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("availability_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var block domain.AvailabilityBlock
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&block.RestaurantID,
		&block.TableID,
		&block.StartTime,
		&block.EndTime,
		&block.Reason,
		&block.BlockType,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return &block, nil
}

// GetOverlapping получает блокировки ресторана, пересекающиеся с окном [start, end)
// Возвращает как ресторанные блокировки, так и блокировки отдельных столиков;
// фильтрация по столику выполняется на уровне домена (AppliesToTable)
func (r *Repository) GetOverlapping(ctx context.Context, restaurantID int64, start, end time.Time) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("availability_blocks").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// Update обновляет окно и причину блокировки
func (r *Repository) Update(ctx context.Context, block *domain.AvailabilityBlock) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_blocks").
		Set("start_time", block.StartTime).
		Set("end_time", block.EndTime).
		Set("reason", block.Reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": block.ID}).
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
		return ErrBlockNotFound
	}

	return nil
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// blockColumns колонки таблицы availability_blocks в порядке сканирования
var blockColumns = []string{
	"id",
	"restaurant_id",
	"table_id",
	"start_time",
	"end_time",
	"reason",
	"block_type",
	"created_at",
	"updated_at",
}

// scanBlocks сканирует результаты запроса в слайс блокировок
func (r *Repository) scanBlocks(rows *sql.Rows) ([]*domain.AvailabilityBlock, error) {
	blocks := make([]*domain.AvailabilityBlock, 0)

	for rows.Next() {
		var block domain.AvailabilityBlock
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.RestaurantID,
			&block.TableID,
			&block.StartTime,
			&block.EndTime,
			&block.Reason,
			&block.BlockType,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		block.UpdatedAt = updatedAt.Time

		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

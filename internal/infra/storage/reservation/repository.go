package reservation

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

// Repository репозиторий для работы с бронями столиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// Когда использовать транзакцию:
// - При создании брони с проверкой конфликтов по столику (для предотвращения race condition)
// - При создании брони с обновлением связанных данных
//
// Когда можно без транзакции:
// - При импорте данных (если не критична консистентность в моменте)
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"customer_id",
			"restaurant_id",
			"table_id",
			"start_time",
			"end_time",
			"party_size",
			"special_requests",
			"status",
		).
		Values(
			reservation.CustomerID,
			reservation.RestaurantID,
			reservation.TableID,
			reservation.StartTime,
			reservation.EndTime,
			reservation.PartySize,
			reservation.SpecialRequests,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.CustomerID,
		&reservation.RestaurantID,
		&reservation.TableID,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.PartySize,
		&reservation.SpecialRequests,
		&reservation.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// GetByCustomerID получает список броней гостя
// Опционально фильтрует по статусу
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByRestaurantWithFilter получает брони ресторана с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Столику (TableID) - опционально
// - Периоду (StartDate, EndDate) - опционально
// - Статусу (Status) - опционально
// - Включению отмененных броней (IncludeCancelled)
func (r *Repository) GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"restaurant_id": filter.RestaurantID})

	// Фильтрация по столику (если указан)
	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *filter.TableID})
	}

	// Фильтрация по периоду: бронь попадает в выборку, если её окно
	// пересекается с [StartDate, EndDate)
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.ReservationStatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetConflicting получает брони столика, пересекающиеся с окном [start, end)
// Отмененные брони не участвуют в проверке конфликтов.
// Внутри транзакции добавляет FOR UPDATE для блокировки конфликтующих строк -
// это предотвращает двойное бронирование при параллельных запросах.
func (r *Repository) GetConflicting(ctx context.Context, tableID int64, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"table_id": tableID}).
		Where(squirrel.NotEq{"status": string(domain.ReservationStatusCancelled)}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConflicting - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConflicting - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

// reservationColumns колонки таблицы reservations в порядке сканирования
var reservationColumns = []string{
	"id",
	"customer_id",
	"restaurant_id",
	"table_id",
	"start_time",
	"end_time",
	"party_size",
	"special_requests",
	"status",
	"created_at",
	"updated_at",
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reservation.ID,
			&reservation.CustomerID,
			&reservation.RestaurantID,
			&reservation.TableID,
			&reservation.StartTime,
			&reservation.EndTime,
			&reservation.PartySize,
			&reservation.SpecialRequests,
			&reservation.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservation.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

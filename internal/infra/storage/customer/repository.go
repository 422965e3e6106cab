package customer

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

// Repository репозиторий для работы с гостями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает гостя
// Email хранится в нормализованном виде (нижний регистр), уникальность
// обеспечивается ограничением UNIQUE (email)
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns(
			"first_name",
			"last_name",
			"email",
			"phone",
		).
		Values(
			customer.FirstName,
			customer.LastName,
			string(customer.Email),
			string(customer.Phone),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return customer, nil
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCustomerRow(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByEmail получает гостя по email
// Сравнение регистронезависимое: email нормализуется конструктором типа
func (r *Repository) GetByEmail(ctx context.Context, email types.Email) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"email": string(email)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCustomerRow(executor.QueryRowContext(ctx, query, args...), "GetByEmail")
}

// Update обновляет контактные данные гостя
func (r *Repository) Update(ctx context.Context, customer *domain.Customer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("first_name", customer.FirstName).
		Set("last_name", customer.LastName).
		Set("email", string(customer.Email)).
		Set("phone", string(customer.Phone)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID}).
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
		return ErrCustomerNotFound
	}

	return nil
}

// customerColumns колонки таблицы customers в порядке сканирования
var customerColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"created_at",
	"updated_at",
}

func (r *Repository) scanCustomerRow(row *sql.Row, op string) (*domain.Customer, error) {
	var customer domain.Customer
	var email, phone string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&email,
		&phone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan customer: %v", ErrScanRow, op, err)
	}

	customer.Email = types.Email(email)
	customer.Phone = types.Phone(phone)
	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}

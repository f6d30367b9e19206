package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const userColumns = "vehicle_plate, name, vehicle_type, is_employee, booked_slot, created_at, updated_at"

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует нового пользователя
// Возвращает ErrPlateAlreadyRegistered, если номер уже зарегистрирован
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("vehicle_plate", "name", "vehicle_type", "is_employee").
		Values(u.VehiclePlate, u.Name, u.VehicleType, u.IsEmployee).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrPlateAlreadyRegistered
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return u, nil
}

// GetByPlate получает пользователя по номеру автомобиля
func (r *Repository) GetByPlate(ctx context.Context, plate string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"vehicle_plate": plate}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByPlate")
}

// GetByNameAndPlate получает пользователя по имени и номеру автомобиля
// Используется при входе в систему
func (r *Repository) GetByNameAndPlate(ctx context.Context, name, plate string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"name": name, "vehicle_plate": plate}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNameAndPlate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByNameAndPlate")
}

// SetBookedSlot атомарно обновляет обратную ссылку пользователя на слот
// Передача nil снимает ссылку
func (r *Repository) SetBookedSlot(ctx context.Context, plate string, slotID *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("booked_slot", slotID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"vehicle_plate": plate}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetBookedSlot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetBookedSlot - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetBookedSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) scanUser(row *sql.Row, method string) (*domain.User, error) {
	var u domain.User
	var bookedSlot sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&u.VehiclePlate, &u.Name, &u.VehicleType, &u.IsEmployee, &bookedSlot, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, method, err)
	}

	if bookedSlot.Valid {
		u.BookedSlot = &bookedSlot.String
	}
	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return &u, nil
}

package slot

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const slotColumns = "slot_id, state, occupant_plate, booked_at, parked_at, created_at, updated_at"

// Repository репозиторий для работы со слотами парковки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Seed создает пул слотов "1".."count" в состоянии free, если таблица пуста.
// Повторный вызов ничего не делает. Вызывается из bootstrap внутри
// сериализуемой транзакции, чтобы два экземпляра сервиса не насоздавали
// слотов дважды.
func (r *Repository) Seed(ctx context.Context, count int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	existing, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	insertBuilder := psqlbuilder.Insert("parking_slots").
		Columns("slot_id", "state")

	for i := 1; i <= count; i++ {
		insertBuilder = insertBuilder.Values(strconv.Itoa(i), domain.StateFree)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
	}

	return count, nil
}

// Count возвращает количество слотов в пуле
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("parking_slots").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByID получает слот по идентификатору
func (r *Repository) GetByID(ctx context.Context, slotID string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns).
		From("parking_slots").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByOccupant получает слот, который сейчас держит указанный номер
// Возвращает ErrSlotNotFound, если за номером не числится ни одного слота
func (r *Repository) GetByOccupant(ctx context.Context, plate string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns).
		From("parking_slots").
		Where(squirrel.Eq{"occupant_plate": plate}).
		Where(squirrel.NotEq{"state": domain.StateFree}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOccupant - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByOccupant")
}

// ListByState получает список слотов в указанном состоянии
// Читающий снимок, не предназначен для принятия решений о бронировании
func (r *Repository) ListByState(ctx context.Context, state domain.SlotState) ([]*domain.Slot, error) {
	return r.list(ctx, psqlbuilder.Select(slotColumns).
		From("parking_slots").
		Where(squirrel.Eq{"state": state}).
		OrderBy("slot_id::integer ASC"), "ListByState")
}

// ListAll получает полный список слотов
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Slot, error) {
	return r.list(ctx, psqlbuilder.Select(slotColumns).
		From("parking_slots").
		OrderBy("slot_id::integer ASC"), "ListAll")
}

// CountByState возвращает количество слотов в каждом состоянии
func (r *Repository) CountByState(ctx context.Context) (map[domain.SlotState]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("state", "COUNT(*)").
		From("parking_slots").
		GroupBy("state").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByState - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByState - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.SlotState]int)
	for rows.Next() {
		var state domain.SlotState
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByState - scan row: %v", ErrScanRow, err)
		}
		counts[state] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByState - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// TryTransition выполняет атомарный compare-and-swap перехода состояния слота.
// Обновление проходит только если текущее состояние равно expected (а для
// перехода из free слот дополнительно должен быть никем не занят) - это
// единственная точка сериализации при конкурентном бронировании.
// Возвращает ErrStateConflict, если условие не выполнилось (проигранная гонка,
// слот уже забронирован или занят).
func (r *Repository) TryTransition(
	ctx context.Context,
	slotID string,
	expected domain.SlotState,
	next domain.SlotState,
	occupantPlate *string,
	ts time.Time,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("parking_slots").
		Set("state", next).
		Set("updated_at", ts).
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.Eq{"state": expected})

	switch next {
	case domain.StateBooked:
		if occupantPlate == nil {
			return fmt.Errorf("%w: TryTransition - occupant plate is required for booking", ErrInvalidTransition)
		}
		updateBuilder = updateBuilder.
			Set("occupant_plate", *occupantPlate).
			Set("booked_at", ts).
			Where(squirrel.Eq{"occupant_plate": nil})
	case domain.StateParked:
		updateBuilder = updateBuilder.Set("parked_at", ts)
	default:
		return fmt.Errorf("%w: TryTransition - unsupported target state %q", ErrInvalidTransition, next)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: TryTransition - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TryTransition - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: TryTransition - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStateConflict
	}

	return nil
}

// Clear безусловно возвращает слот в состояние free, очищая занятость
// и временные метки. Используется при освобождении слота и при компенсации
// частично выполненного бронирования.
func (r *Repository) Clear(ctx context.Context, slotID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_slots").
		Set("state", domain.StateFree).
		Set("occupant_plate", nil).
		Set("booked_at", nil).
		Set("parked_at", nil).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Clear - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Clear - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, builder squirrel.SelectBuilder, method string) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		var occupant sql.NullString
		var bookedAt, parkedAt, createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&s.SlotID, &s.State, &occupant, &bookedAt, &parkedAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		fillOptionalFields(&s, occupant, bookedAt, parkedAt, createdAt, updatedAt)
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return slots, nil
}

func (r *Repository) scanSlot(row *sql.Row, method string) (*domain.Slot, error) {
	var s domain.Slot
	var occupant sql.NullString
	var bookedAt, parkedAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(&s.SlotID, &s.State, &occupant, &bookedAt, &parkedAt, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, method, err)
	}

	fillOptionalFields(&s, occupant, bookedAt, parkedAt, createdAt, updatedAt)
	return &s, nil
}

func fillOptionalFields(s *domain.Slot, occupant sql.NullString, bookedAt, parkedAt, createdAt, updatedAt sql.NullTime) {
	if occupant.Valid {
		s.OccupantPlate = &occupant.String
	}
	if bookedAt.Valid {
		t := bookedAt.Time
		s.BookedAt = &t
	}
	if parkedAt.Valid {
		t := parkedAt.Time
		s.ParkedAt = &t
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
}

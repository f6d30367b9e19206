package users

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByPlate(ctx context.Context, plate string) (*domain.User, error)
	GetByNameAndPlate(ctx context.Context, name, plate string) (*domain.User, error)
}

// SlotRepository интерфейс репозитория слотов
// Нужен профилю, чтобы показать фактическое состояние забронированного слота
type SlotRepository interface {
	GetByID(ctx context.Context, slotID string) (*domain.Slot, error)
	GetByOccupant(ctx context.Context, plate string) (*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

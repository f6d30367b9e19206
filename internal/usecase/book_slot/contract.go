package book_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, slotID string) (*domain.Slot, error)
	TryTransition(ctx context.Context, slotID string, expected, next domain.SlotState, occupantPlate *string, ts time.Time) error
	Clear(ctx context.Context, slotID string) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByPlate(ctx context.Context, plate string) (*domain.User, error)
	SetBookedSlot(ctx context.Context, plate string, slotID *string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

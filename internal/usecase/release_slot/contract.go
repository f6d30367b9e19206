package release_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, slotID string) (*domain.Slot, error)
	Clear(ctx context.Context, slotID string) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByPlate(ctx context.Context, plate string) (*domain.User, error)
	SetBookedSlot(ctx context.Context, plate string, slotID *string) error
}

// FeeCalculator интерфейс расчета стоимости парковки
type FeeCalculator interface {
	Calculate(timeIn time.Time, isEmployee bool, now time.Time) float64
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

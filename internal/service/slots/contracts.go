package slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, slotID string) (*domain.Slot, error)
	ListByState(ctx context.Context, state domain.SlotState) ([]*domain.Slot, error)
	ListAll(ctx context.Context) ([]*domain.Slot, error)
	CountByState(ctx context.Context) (map[domain.SlotState]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

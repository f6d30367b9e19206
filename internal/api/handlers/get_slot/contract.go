package get_slot

import (
	"context"

	slotsModels "github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

type SlotService interface {
	GetByID(ctx context.Context, slotID string) (*slotsModels.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

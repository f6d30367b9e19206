package parking_status

import (
	"context"

	slotsModels "github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

type SlotService interface {
	Status(ctx context.Context) (*slotsModels.ParkingStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

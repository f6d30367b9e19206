package list_slots

import (
	"context"

	slotsModels "github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

type SlotService interface {
	ListAll(ctx context.Context) (*slotsModels.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

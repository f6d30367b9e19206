package park_vehicle

import (
	"context"

	parkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/park_vehicle"
)

type ParkVehicleUseCase interface {
	Execute(ctx context.Context, req *parkVehicle.Request) (*parkVehicle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package park_vehicle

import (
	"time"

	parkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/park_vehicle"
)

// ParkVehicleResponse HTTP response model
type ParkVehicleResponse struct {
	SlotID       string `json:"slotId"`
	VehiclePlate string `json:"vehiclePlate,omitempty"`
	ParkedAt     string `json:"parkedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *parkVehicle.Response) *ParkVehicleResponse {
	return &ParkVehicleResponse{
		SlotID:       resp.SlotID,
		VehiclePlate: resp.VehiclePlate,
		ParkedAt:     resp.ParkedAt.Format(time.RFC3339),
	}
}

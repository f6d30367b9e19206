package release_slot

import (
	"time"

	releaseSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/release_slot"
)

// ReleaseSlotResponse HTTP response model
type ReleaseSlotResponse struct {
	SlotID       string   `json:"slotId"`
	VehiclePlate string   `json:"vehiclePlate,omitempty"`
	TimeIn       *string  `json:"timeIn,omitempty"`
	TimeOut      string   `json:"timeOut"`
	Fee          *float64 `json:"fee,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *releaseSlot.Response) *ReleaseSlotResponse {
	out := &ReleaseSlotResponse{
		SlotID:       resp.SlotID,
		VehiclePlate: resp.VehiclePlate,
		TimeOut:      resp.TimeOut.Format(time.RFC3339),
		Fee:          resp.Fee,
	}
	if resp.TimeIn != nil {
		timeIn := resp.TimeIn.Format(time.RFC3339)
		out.TimeIn = &timeIn
	}
	return out
}

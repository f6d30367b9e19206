package book_slot

import (
	"time"

	bookSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	VehiclePlate string `json:"vehiclePlate"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	SlotID       string `json:"slotId"`
	VehiclePlate string `json:"vehiclePlate"`
	BookedAt     string `json:"bookedAt"`
	UserName     string `json:"userName,omitempty"`
	VehicleType  string `json:"vehicleType,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		SlotID:       resp.SlotID,
		VehiclePlate: resp.VehiclePlate,
		BookedAt:     resp.BookedAt.Format(time.RFC3339),
		UserName:     resp.UserName,
		VehicleType:  resp.VehicleType,
	}
}

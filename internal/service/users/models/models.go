package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name         string `json:"name"`
	VehiclePlate string `json:"vehiclePlate"`
	VehicleType  string `json:"vehicleType"`
	IsEmployee   bool   `json:"isEmployee"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Name         string `json:"name"`
	VehiclePlate string `json:"vehiclePlate"`
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	VehiclePlate    string    `json:"vehiclePlate"`
	Name            string    `json:"name"`
	VehicleType     string    `json:"vehicleType"`
	IsEmployee      bool      `json:"isEmployee"`
	BookedSlot      *string   `json:"bookedSlot,omitempty"`
	BookedSlotState *string   `json:"bookedSlotState,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		VehiclePlate: u.VehiclePlate,
		Name:         u.Name,
		VehicleType:  u.VehicleType,
		IsEmployee:   u.IsEmployee,
		BookedSlot:   u.BookedSlot,
		CreatedAt:    u.CreatedAt,
	}
}

package park_vehicle

import "time"

// Request запрос на отметку о прибытии автомобиля в слот
type Request struct {
	SlotID string
}

// Response результат успешной парковки
type Response struct {
	SlotID       string
	VehiclePlate string
	ParkedAt     time.Time
}

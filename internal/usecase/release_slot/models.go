package release_slot

import "time"

// Request запрос на освобождение слота
type Request struct {
	SlotID string
}

// Response результат освобождения слота.
// Fee заполняется только если автомобиль фактически стоял в слоте;
// отмена брони до прибытия бесплатна
type Response struct {
	SlotID       string
	VehiclePlate string
	TimeIn       *time.Time
	TimeOut      time.Time
	Fee          *float64
}

package book_slot

import "time"

// Request модель запроса на бронирование слота
type Request struct {
	SlotID       string // Идентификатор слота ("1".."N")
	VehiclePlate string // Номер автомобиля (нормализуется внутри)
}

// Response модель ответа с созданной бронью
type Response struct {
	SlotID       string    // Забронированный слот
	VehiclePlate string    // Нормализованный номер
	BookedAt     time.Time // Время бронирования
	UserName     string    // Имя владельца брони
	VehicleType  string    // Тип транспортного средства
}

package park_vehicle

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не существует
	ErrSlotNotFound = errors.New("park_vehicle: slot not found")

	// ErrSlotNotBooked возвращается, когда слот не находится в состоянии
	// брони: парковаться можно только в предварительно забронированный слот
	ErrSlotNotBooked = errors.New("park_vehicle: slot is not booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("park_vehicle: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("park_vehicle: internal error")
)

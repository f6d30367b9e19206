package book_slot

import "errors"

var (
	// ErrUserNotFound возвращается, когда номер не зарегистрирован
	ErrUserNotFound = errors.New("book_slot: user not found")

	// ErrSlotNotFound возвращается, когда слот не существует
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrUserAlreadyBooked возвращается, когда у пользователя уже есть
	// действующая бронь другого слота; идентификатор слота добавляется
	// при оборачивании
	ErrUserAlreadyBooked = errors.New("book_slot: user already has a booked slot")

	// ErrSlotOccupied возвращается, когда в слоте уже стоит автомобиль
	ErrSlotOccupied = errors.New("book_slot: slot is occupied")

	// ErrSlotAlreadyBooked возвращается, когда слот забронирован другим
	// пользователем либо бронь проиграна в гонке (CAS-конфликт)
	ErrSlotAlreadyBooked = errors.New("book_slot: slot is already booked")

	// ErrSlotBookedBySameUser возвращается при попытке повторно
	// забронировать собственный слот; повторная бронь - это ошибка,
	// а не no-op
	ErrSlotBookedBySameUser = errors.New("book_slot: slot is already booked by this user")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)

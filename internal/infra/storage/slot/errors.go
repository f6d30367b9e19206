package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrStateConflict возвращается, когда CAS-переход не прошёл:
	// текущее состояние слота не совпало с ожидаемым (проигранная гонка)
	ErrStateConflict = errors.New("slot.repository: slot state conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")

	// ErrInvalidTransition возвращается при попытке недопустимого перехода состояния
	ErrInvalidTransition = errors.New("slot.repository: invalid state transition")
)

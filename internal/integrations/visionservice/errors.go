package visionservice

import "errors"

var (
	// ErrPlateNotRecognized возвращается, когда на изображении не удалось
	// найти читаемый номер
	ErrPlateNotRecognized = errors.New("no license plate recognized in image")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("visionservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("visionservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис распознавания недоступен и следует работать
	// без автоматической детекции
	ErrServiceDegraded = errors.New("visionservice unavailable: graceful degradation applied")
)

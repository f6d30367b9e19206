package visionservice

// DetectedSlot результат распознавания одного слота на изображении парковки
type DetectedSlot struct {
	SlotID     string  `json:"slot_id"`
	Occupied   bool    `json:"occupied"`
	Confidence float64 `json:"confidence"`
}

// DetectSlotsResponse модель ответа сервиса распознавания на запрос
// детекции занятости слотов
type DetectSlotsResponse struct {
	Slots []DetectedSlot `json:"slots"`
}

// RecognizePlateResponse модель ответа сервиса распознавания номера
type RecognizePlateResponse struct {
	Plate      string  `json:"plate"`
	Confidence float64 `json:"confidence"`
}

// ErrorResponse модель ошибки от сервиса распознавания
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

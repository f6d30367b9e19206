package detect_slots

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/visionservice"
)

// Ограничение на размер изображения парковки
const maxImageSize = 10 << 20 // 10 MiB

const (
	msgEmptyImage         = "требуется изображение парковки"
	msgImageTooLarge      = "изображение слишком большое"
	msgServiceUnavailable = "сервис распознавания временно недоступен"
	msgDetected           = "занятость слотов распознана"
)

type Handler struct {
	visionClient VisionClient
	logger       Logger
}

func NewHandler(visionClient VisionClient, logger Logger) *Handler {
	return &Handler{
		visionClient: visionClient,
		logger:       logger,
	}
}

// Handle POST /api/v1/vision/detect-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(io.LimitReader(r.Body, maxImageSize+1))
	if err != nil {
		h.logger.Warn("POST /vision/detect-slots - Failed to read image: %v", err)
		handlers.RespondBadRequest(w, msgEmptyImage)
		return
	}
	defer r.Body.Close()

	if len(image) == 0 {
		handlers.RespondBadRequest(w, msgEmptyImage)
		return
	}
	if len(image) > maxImageSize {
		h.logger.Warn("POST /vision/detect-slots - Image too large: %d bytes", len(image))
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
		return
	}

	result, err := h.visionClient.DetectSlotsWithGracefulDegradation(r.Context(), image)
	if err != nil {
		if errors.Is(err, visionservice.ErrServiceDegraded) {
			h.logger.Error("POST /vision/detect-slots - Vision service degraded: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceUnavailable)
			return
		}
		h.logger.Error("POST /vision/detect-slots - Detection failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /vision/detect-slots - Detected %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, msgDetected, result)
}

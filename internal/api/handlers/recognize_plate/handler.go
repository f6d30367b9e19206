package recognize_plate

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/visionservice"
)

// Ограничение на размер изображения автомобиля
const maxImageSize = 10 << 20 // 10 MiB

const (
	msgEmptyImage         = "требуется изображение автомобиля"
	msgImageTooLarge      = "изображение слишком большое"
	msgPlateNotFound      = "номер на изображении не распознан"
	msgServiceUnavailable = "сервис распознавания временно недоступен"
	msgRecognized         = "номер распознан"
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

// Handle POST /api/v1/vision/recognize-plate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(io.LimitReader(r.Body, maxImageSize+1))
	if err != nil {
		h.logger.Warn("POST /vision/recognize-plate - Failed to read image: %v", err)
		handlers.RespondBadRequest(w, msgEmptyImage)
		return
	}
	defer r.Body.Close()

	if len(image) == 0 {
		handlers.RespondBadRequest(w, msgEmptyImage)
		return
	}
	if len(image) > maxImageSize {
		h.logger.Warn("POST /vision/recognize-plate - Image too large: %d bytes", len(image))
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
		return
	}

	result, err := h.visionClient.RecognizePlateWithGracefulDegradation(r.Context(), image)
	if err != nil {
		switch {
		case errors.Is(err, visionservice.ErrPlateNotRecognized):
			h.logger.Warn("POST /vision/recognize-plate - Plate not recognized")
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPlateNotFound)

		case errors.Is(err, visionservice.ErrServiceDegraded):
			h.logger.Error("POST /vision/recognize-plate - Vision service degraded: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceUnavailable)

		default:
			h.logger.Error("POST /vision/recognize-plate - Recognition failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vision/recognize-plate - Recognized plate=%s", result.Plate)
	handlers.RespondJSON(w, http.StatusOK, msgRecognized, result)
}

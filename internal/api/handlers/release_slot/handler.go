package release_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	releaseSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/release_slot"
)

const (
	msgInvalidInput = "некорректный идентификатор слота"
	msgSlotNotFound = "слот не найден"
	msgReleased     = "слот освобожден"
)

type Handler struct {
	useCase ReleaseSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	result, err := h.useCase.Execute(r.Context(), &releaseSlot.Request{SlotID: slotID})
	if err != nil {
		switch {
		case errors.Is(err, releaseSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/%s/release - Invalid input: %v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, releaseSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/%s/release - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("POST /slots/%s/release - Failed to release: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/%s/release - Slot released: plate=%s", slotID, result.VehiclePlate)
	handlers.RespondJSON(w, http.StatusOK, msgReleased, FromUseCaseResponse(result))
}

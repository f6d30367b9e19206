package get_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	slotsService "github.com/m04kA/SMC-ParkingService/internal/service/slots"
)

const (
	msgSlotNotFound = "слот не найден"
	msgSlot         = "данные слота"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	result, err := h.service.GetByID(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			h.logger.Warn("GET /slots/%s - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("GET /slots/%s - Failed to get slot: %v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, msgSlot, result)
}

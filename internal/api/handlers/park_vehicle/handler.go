package park_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	parkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/park_vehicle"
)

const (
	msgInvalidInput  = "некорректный идентификатор слота"
	msgSlotNotFound  = "слот не найден"
	msgSlotNotBooked = "слот не забронирован"
	msgParked        = "автомобиль припаркован"
)

type Handler struct {
	useCase ParkVehicleUseCase
	logger  Logger
}

func NewHandler(useCase ParkVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/park
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	result, err := h.useCase.Execute(r.Context(), &parkVehicle.Request{SlotID: slotID})
	if err != nil {
		switch {
		case errors.Is(err, parkVehicle.ErrInvalidInput):
			h.logger.Warn("POST /slots/%s/park - Invalid input: %v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, parkVehicle.ErrSlotNotFound):
			h.logger.Warn("POST /slots/%s/park - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, parkVehicle.ErrSlotNotBooked):
			h.logger.Warn("POST /slots/%s/park - Slot not booked", slotID)
			handlers.RespondConflict(w, msgSlotNotBooked)

		default:
			h.logger.Error("POST /slots/%s/park - Failed to park: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/%s/park - Vehicle parked: plate=%s", slotID, result.VehiclePlate)
	handlers.RespondJSON(w, http.StatusOK, msgParked, FromUseCaseResponse(result))
}

package book_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUserNotFound       = "пользователь с таким номером не зарегистрирован"
	msgSlotNotFound       = "слот не найден"
	msgUserAlreadyBooked  = "у пользователя уже есть забронированный слот"
	msgSlotOccupied       = "в слоте уже стоит автомобиль"
	msgSlotBookedByYou    = "этот слот уже забронирован вами"
	msgSlotAlreadyBooked  = "слот уже забронирован другим пользователем"
	msgBooked             = "слот забронирован"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/%s/book - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookSlot.Request{
		SlotID:       slotID,
		VehiclePlate: req.VehiclePlate,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/%s/book - Invalid input: %v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookSlot.ErrUserNotFound):
			h.logger.Warn("POST /slots/%s/book - User not found: plate=%s", slotID, req.VehiclePlate)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/%s/book - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrUserAlreadyBooked):
			h.logger.Warn("POST /slots/%s/book - User already booked: plate=%s", slotID, req.VehiclePlate)
			handlers.RespondConflict(w, msgUserAlreadyBooked)

		case errors.Is(err, bookSlot.ErrSlotOccupied):
			h.logger.Warn("POST /slots/%s/book - Slot occupied", slotID)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, bookSlot.ErrSlotBookedBySameUser):
			h.logger.Warn("POST /slots/%s/book - Slot already booked by requester: plate=%s", slotID, req.VehiclePlate)
			handlers.RespondConflict(w, msgSlotBookedByYou)

		case errors.Is(err, bookSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /slots/%s/book - Slot already booked", slotID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		default:
			h.logger.Error("POST /slots/%s/book - Failed to book slot: plate=%s, error=%v", slotID, req.VehiclePlate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/%s/book - Slot booked: plate=%s", slotID, result.VehiclePlate)
	handlers.RespondJSON(w, http.StatusOK, msgBooked, FromUseCaseResponse(result))
}

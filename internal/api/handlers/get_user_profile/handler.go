package get_user_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	usersService "github.com/m04kA/SMC-ParkingService/internal/service/users"
)

const (
	msgInvalidInput = "некорректный номер автомобиля"
	msgUserNotFound = "пользователь не найден"
	msgProfile      = "профиль пользователя"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{vehiclePlate}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["vehiclePlate"]

	result, err := h.service.GetProfile(r.Context(), plate)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("GET /users/%s - Invalid plate: %v", plate, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("GET /users/%s - User not found", plate)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /users/%s - Failed to get profile: %v", plate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, msgProfile, result)
}

package register_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	usersService "github.com/m04kA/SMC-ParkingService/internal/service/users"
	usersModels "github.com/m04kA/SMC-ParkingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные регистрации"
	msgPlateTaken         = "автомобиль с таким номером уже зарегистрирован"
	msgRegistered         = "пользователь зарегистрирован"
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

// Handle POST /api/v1/users/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req usersModels.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /users/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, usersService.ErrPlateAlreadyRegistered):
			h.logger.Warn("POST /users/register - Plate already registered: plate=%s", req.VehiclePlate)
			handlers.RespondConflict(w, msgPlateTaken)

		default:
			h.logger.Error("POST /users/register - Failed to register user: plate=%s, error=%v", req.VehiclePlate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/register - User registered: plate=%s", result.VehiclePlate)
	handlers.RespondJSON(w, http.StatusCreated, msgRegistered, result)
}

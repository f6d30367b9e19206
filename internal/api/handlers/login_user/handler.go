package login_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	usersService "github.com/m04kA/SMC-ParkingService/internal/service/users"
	usersModels "github.com/m04kA/SMC-ParkingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "требуются имя и номер автомобиля"
	msgPlateTaken         = "номер зарегистрирован под другим именем"
	msgLoggedIn           = "вход выполнен"
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

// Handle POST /api/v1/users/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req usersModels.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /users/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, usersService.ErrPlateAlreadyRegistered):
			h.logger.Warn("POST /users/login - Plate registered under different name: plate=%s", req.VehiclePlate)
			handlers.RespondConflict(w, msgPlateTaken)

		default:
			h.logger.Error("POST /users/login - Failed to login: plate=%s, error=%v", req.VehiclePlate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/login - Login successful: plate=%s", result.VehiclePlate)
	handlers.RespondJSON(w, http.StatusOK, msgLoggedIn, result)
}

package get_user_profile

import (
	"context"

	usersModels "github.com/m04kA/SMC-ParkingService/internal/service/users/models"
)

type UserService interface {
	GetProfile(ctx context.Context, vehiclePlate string) (*usersModels.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

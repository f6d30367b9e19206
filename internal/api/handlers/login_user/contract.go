package login_user

import (
	"context"

	usersModels "github.com/m04kA/SMC-ParkingService/internal/service/users/models"
)

type UserService interface {
	Login(ctx context.Context, req *usersModels.LoginRequest) (*usersModels.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

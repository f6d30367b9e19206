package recognize_plate

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/integrations/visionservice"
)

type VisionClient interface {
	RecognizePlateWithGracefulDegradation(ctx context.Context, image []byte) (*visionservice.RecognizePlateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package detect_slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/integrations/visionservice"
)

type VisionClient interface {
	DetectSlotsWithGracefulDegradation(ctx context.Context, image []byte) (*visionservice.DetectSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package book_slot

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Номер к этому моменту уже нормализован
func validateRequest(slotID, plate string) error {
	if slotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	if plate == "" {
		return fmt.Errorf("%w: vehicle plate is required", ErrInvalidInput)
	}
	if len(plate) > domain.MaxPlateLength {
		return fmt.Errorf("%w: vehicle plate is too long", ErrInvalidInput)
	}
	return nil
}

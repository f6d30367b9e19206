package park_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
)

// UseCase use case отметки о фактическом прибытии автомобиля.
// Переход затрагивает единственный ресурс (слот), поэтому компенсация
// не нужна: занявший слот номер при переходе не меняется
type UseCase struct {
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит слот из брони в занятое состояние
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SlotID == "" {
		uc.logger.Warn("ParkVehicle: empty slot id")
		return nil, fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}

	uc.logger.Info("ParkVehicle: slot=%s", req.SlotID)

	now := uc.timeProvider.Now()

	// 1. Слот должен существовать и быть забронированным
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("ParkVehicle: slot=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("ParkVehicle: failed to get slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if !slot.IsBooked() {
		uc.logger.Warn("ParkVehicle: slot=%s is not booked, state=%s", req.SlotID, slot.State)
		return nil, ErrSlotNotBooked
	}

	// 2. CAS Booked -> Parked. Если состояние успело измениться между
	// чтением и переходом, конфликт означает то же нарушение предусловия
	err = uc.slotRepo.TryTransition(ctx, req.SlotID, domain.StateBooked, domain.StateParked, nil, now)
	if err != nil {
		if errors.Is(err, slotRepo.ErrStateConflict) {
			uc.logger.Warn("ParkVehicle: slot=%s changed state during transition", req.SlotID)
			return nil, ErrSlotNotBooked
		}
		uc.logger.Error("ParkVehicle: transition failed for slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to park: %v", ErrInternal, err)
	}

	resp := &Response{
		SlotID:   req.SlotID,
		ParkedAt: now,
	}
	if slot.OccupantPlate != nil {
		resp.VehiclePlate = *slot.OccupantPlate
	}

	uc.logger.Info("ParkVehicle: slot=%s parked, plate=%s", req.SlotID, resp.VehiclePlate)

	return resp, nil
}

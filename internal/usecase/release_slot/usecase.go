package release_slot

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/user"
)

// UseCase use case освобождения слота. Освобождение безусловное:
// слот сбрасывается в свободное состояние независимо от того, была это
// бронь, парковка или слот уже пуст
type UseCase struct {
	slotRepo     SlotRepository
	userRepo     UserRepository
	feeCalc      FeeCalculator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, userRepo UserRepository, feeCalc FeeCalculator, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		userRepo:     userRepo,
		feeCalc:      feeCalc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute освобождает слот, отвязывает бронь пользователя и считает
// стоимость, если автомобиль стоял в слоте
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SlotID == "" {
		uc.logger.Warn("ReleaseSlot: empty slot id")
		return nil, fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}

	uc.logger.Info("ReleaseSlot: slot=%s", req.SlotID)

	now := uc.timeProvider.Now()

	// 1. Снимаем состояние слота до сброса: Clear затирает номер и
	// временные метки, а они нужны для отвязки брони и расчета стоимости
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("ReleaseSlot: slot=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("ReleaseSlot: failed to get slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	wasParked := slot.IsParked()
	entryTime := slot.EntryTime()

	var occupant string
	if slot.OccupantPlate != nil {
		occupant = *slot.OccupantPlate
	}

	// 2. Сбрасываем слот в свободное состояние
	if err := uc.slotRepo.Clear(ctx, req.SlotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("ReleaseSlot: failed to clear slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to clear slot: %v", ErrInternal, err)
	}

	resp := &Response{
		SlotID:       req.SlotID,
		VehiclePlate: occupant,
		TimeIn:       entryTime,
		TimeOut:      now,
	}

	if occupant == "" {
		uc.logger.Info("ReleaseSlot: slot=%s was empty, reset to free", req.SlotID)
		return resp, nil
	}

	// 3. Отвязываем бронь от пользователя. Слот уже свободен, поэтому
	// неудача здесь не откатывает освобождение: висячую ссылку починит
	// самовосстановление при следующей попытке бронирования
	isEmployee := false
	user, err := uc.userRepo.GetByPlate(ctx, occupant)
	switch {
	case err == nil:
		isEmployee = user.IsEmployee
		if err := uc.userRepo.SetBookedSlot(ctx, occupant, nil); err != nil {
			uc.logger.Error("ReleaseSlot: failed to detach booking from plate=%s: %v", occupant, err)
		}
	case errors.Is(err, userRepo.ErrUserNotFound):
		uc.logger.Warn("ReleaseSlot: occupant plate=%s is not registered", occupant)
	default:
		uc.logger.Error("ReleaseSlot: failed to get user plate=%s: %v", occupant, err)
	}

	// 4. Стоимость считается только за фактическую стоянку
	if wasParked && entryTime != nil {
		fee := uc.feeCalc.Calculate(*entryTime, isEmployee, now)
		resp.Fee = &fee
		uc.logger.Info("ReleaseSlot: slot=%s released, plate=%s, fee=%.2f", req.SlotID, occupant, fee)
		return resp, nil
	}

	uc.logger.Info("ReleaseSlot: slot=%s booking cancelled, plate=%s", req.SlotID, occupant)

	return resp, nil
}

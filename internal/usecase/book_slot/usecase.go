package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/user"
)

// UseCase use case бронирования слота
//
// Двухшаговое обновление (слот + обратная ссылка пользователя) намеренно
// не обёрнуто в транзакцию: корректность держится на CAS в точке захвата
// слота, компенсации при неудаче второго шага и самовосстановлении
// устаревших обратных ссылок при следующем бронировании
type UseCase struct {
	slotRepo     SlotRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, userRepo UserRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализуем номер - сравнение и запись всегда идут в одной форме
	plate := domain.NormalizePlate(req.VehiclePlate)

	if err := validateRequest(req.SlotID, plate); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookSlot: slot=%s, plate=%s", req.SlotID, plate)

	now := uc.timeProvider.Now()

	// 2. Пользователь должен быть зарегистрирован
	user, err := uc.userRepo.GetByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookSlot: user plate=%s not found", plate)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("BookSlot: failed to get user plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Проверяем действующую бронь пользователя; устаревшую обратную
	// ссылку чиним и продолжаем
	if user.HasBooking() {
		if err := uc.resolveExistingBooking(ctx, user, plate); err != nil {
			return nil, err
		}
	}

	// 4. Целевой слот должен существовать и быть свободным
	target, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("BookSlot: slot=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("BookSlot: failed to get slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	switch target.State {
	case domain.StateParked:
		uc.logger.Warn("BookSlot: slot=%s is occupied", req.SlotID)
		return nil, ErrSlotOccupied
	case domain.StateBooked:
		if target.IsOccupiedBy(plate) {
			uc.logger.Warn("BookSlot: slot=%s already booked by plate=%s", req.SlotID, plate)
			return nil, ErrSlotBookedBySameUser
		}
		uc.logger.Warn("BookSlot: slot=%s already booked by another user", req.SlotID)
		return nil, ErrSlotAlreadyBooked
	}

	// 5. Захват слота: единственная точка сериализации. При конкурентных
	// запросах CAS пройдёт ровно у одного, остальные получат конфликт.
	// Автоматических повторов нет - решает вызывающий
	err = uc.slotRepo.TryTransition(ctx, req.SlotID, domain.StateFree, domain.StateBooked, &plate, now)
	if err != nil {
		if errors.Is(err, slotRepo.ErrStateConflict) {
			uc.logger.Warn("BookSlot: lost race for slot=%s, plate=%s", req.SlotID, plate)
			return nil, ErrSlotAlreadyBooked
		}
		uc.logger.Error("BookSlot: transition failed for slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
	}

	// 6. Привязываем обратную ссылку. При неудаче компенсируем захват:
	// слот не должен остаться забронированным без ссылки у пользователя
	if err := uc.userRepo.SetBookedSlot(ctx, plate, &req.SlotID); err != nil {
		uc.logger.Error("BookSlot: failed to attach booking to plate=%s, compensating: %v", plate, err)
		if clearErr := uc.slotRepo.Clear(ctx, req.SlotID); clearErr != nil {
			// Компенсация не прошла - остаётся окно несогласованности,
			// которое закроет самовосстановление при следующей брони
			uc.logger.Error("BookSlot: compensation failed for slot=%s: %v", req.SlotID, clearErr)
		}
		return nil, fmt.Errorf("%w: failed to attach booking: %v", ErrInternal, err)
	}

	uc.logger.Info("BookSlot: successfully booked slot=%s for plate=%s", req.SlotID, plate)

	return &Response{
		SlotID:       req.SlotID,
		VehiclePlate: plate,
		BookedAt:     now,
		UserName:     user.Name,
		VehicleType:  user.VehicleType,
	}, nil
}

// resolveExistingBooking разбирается с непустой обратной ссылкой пользователя.
// Если слот по ссылке действительно числится за этим номером - бронь
// действующая и новая отклоняется. Иначе ссылка устарела (сбой между
// шагами записи или освобождение слота в обход пользователя) - чиним её
// и позволяем бронированию продолжиться
func (uc *UseCase) resolveExistingBooking(ctx context.Context, user *domain.User, plate string) error {
	current, err := uc.slotRepo.GetByID(ctx, *user.BookedSlot)
	if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
		uc.logger.Error("BookSlot: failed to check existing booking slot=%s: %v", *user.BookedSlot, err)
		return fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
	}

	if err == nil && current.IsOccupiedBy(plate) {
		uc.logger.Warn("BookSlot: plate=%s already holds slot=%s", plate, current.SlotID)
		return fmt.Errorf("%w: slot %s", ErrUserAlreadyBooked, current.SlotID)
	}

	uc.logger.Info("BookSlot: healing stale booking reference plate=%s -> slot=%s", plate, *user.BookedSlot)

	if err := uc.userRepo.SetBookedSlot(ctx, plate, nil); err != nil {
		uc.logger.Error("BookSlot: failed to heal stale reference for plate=%s: %v", plate, err)
		return fmt.Errorf("%w: failed to clear stale booking: %v", ErrInternal, err)
	}

	user.BookedSlot = nil
	return nil
}

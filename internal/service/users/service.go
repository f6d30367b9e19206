package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ParkingService/internal/service/users/models"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo UserRepository
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя
// Номер нормализуется до записи; повторная регистрация номера отклоняется
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	plate := domain.NormalizePlate(req.VehiclePlate)
	name := strings.TrimSpace(req.Name)

	if err := validateRegistration(name, plate, req.VehicleType); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("Register: registering user name=%s, plate=%s", name, plate)

	created, err := s.userRepo.Create(ctx, &domain.User{
		VehiclePlate: plate,
		Name:         name,
		VehicleType:  strings.TrimSpace(req.VehicleType),
		IsEmployee:   req.IsEmployee,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrPlateAlreadyRegistered) {
			s.logger.Warn("Register: plate=%s already registered", plate)
			return nil, ErrPlateAlreadyRegistered
		}
		s.logger.Error("Register: repository error for plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered plate=%s", plate)
	return models.FromDomainUser(created), nil
}

// Login выполняет вход по имени и номеру автомобиля
// Если пользователь не найден, он регистрируется автоматически -
// первый вход равнозначен регистрации
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	plate := domain.NormalizePlate(req.VehiclePlate)
	name := strings.TrimSpace(req.Name)

	if name == "" || plate == "" {
		s.logger.Warn("Login: missing name or plate")
		return nil, fmt.Errorf("%w: name and vehicle plate are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempt for name=%s, plate=%s", name, plate)

	found, err := s.userRepo.GetByNameAndPlate(ctx, name, plate)
	if err == nil {
		s.logger.Info("Login: successful for plate=%s", plate)
		return models.FromDomainUser(found), nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Login: repository error for plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	// Первый вход - регистрируем. Если номер уже занят под другим именем,
	// Create вернёт конфликт и он уйдёт наружу
	created, err := s.userRepo.Create(ctx, &domain.User{
		VehiclePlate: plate,
		Name:         name,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrPlateAlreadyRegistered) {
			s.logger.Warn("Login: plate=%s registered under a different name", plate)
			return nil, ErrPlateAlreadyRegistered
		}
		s.logger.Error("Login: failed to auto-register plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: Login - auto-register error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: auto-registered new user plate=%s", plate)
	return models.FromDomainUser(created), nil
}

// GetProfile получает профиль пользователя по номеру автомобиля
// Бронь показывается вместе с фактическим состоянием слота; устаревшая
// ссылка (слот уже свободен или занят другим номером) в профиль не попадает
func (s *Service) GetProfile(ctx context.Context, vehiclePlate string) (*models.UserResponse, error) {
	plate := domain.NormalizePlate(vehiclePlate)
	if plate == "" {
		return nil, fmt.Errorf("%w: vehicle plate is required", ErrInvalidInput)
	}

	found, err := s.userRepo.GetByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: plate=%s not found", plate)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainUser(found)

	if found.HasBooking() {
		slot, err := s.slotRepo.GetByID(ctx, *found.BookedSlot)
		switch {
		case err == nil && slot.IsOccupiedBy(plate):
			state := string(slot.State)
			resp.BookedSlotState = &state
		case err == nil || errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("GetProfile: stale booking reference plate=%s -> slot=%s", plate, *found.BookedSlot)
			resp.BookedSlot = nil
		default:
			s.logger.Error("GetProfile: failed to check booked slot=%s: %v", *found.BookedSlot, err)
		}
		return resp, nil
	}

	// Обратная связь: ссылки нет, но слот может числиться за номером,
	// если привязка потерялась между шагами записи. Показываем занятый
	// слот по данным реестра слотов
	slot, err := s.slotRepo.GetByOccupant(ctx, plate)
	switch {
	case err == nil:
		s.logger.Warn("GetProfile: plate=%s holds slot=%s without a booking reference", plate, slot.SlotID)
		resp.BookedSlot = &slot.SlotID
		state := string(slot.State)
		resp.BookedSlotState = &state
	case errors.Is(err, slotRepo.ErrSlotNotFound):
		// Номер действительно ничего не держит
	default:
		s.logger.Error("GetProfile: failed to look up slot by plate=%s: %v", plate, err)
	}

	return resp, nil
}

func validateRegistration(name, plate, vehicleType string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if plate == "" {
		return fmt.Errorf("%w: vehicle plate is required", ErrInvalidInput)
	}
	if len(plate) > domain.MaxPlateLength {
		return fmt.Errorf("%w: vehicle plate is too long", ErrInvalidInput)
	}
	if len(vehicleType) > domain.MaxVehicleTypeLength {
		return fmt.Errorf("%w: vehicle type is too long", ErrInvalidInput)
	}
	return nil
}

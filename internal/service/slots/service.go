package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

// Service читающий сервис для работы со слотами
// Списки - это снимки на момент чтения; решения о бронировании
// принимает booking workflow через CAS, а не эти выборки
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetByID получает слот по идентификатору
func (s *Service) GetByID(ctx context.Context, slotID string) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%s not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// ListAvailable получает список свободных слотов
func (s *Service) ListAvailable(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.ListByState(ctx, domain.StateFree)
	if err != nil {
		s.logger.Error("ListAvailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAvailable: %d free slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// ListAll получает полный список слотов с их занятостью
func (s *Service) ListAll(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// Status возвращает сводку занятости парковки
func (s *Service) Status(ctx context.Context) (*models.ParkingStatusResponse, error) {
	counts, err := s.slotRepo.CountByState(ctx)
	if err != nil {
		s.logger.Error("Status: repository error: %v", err)
		return nil, fmt.Errorf("%w: Status - repository error: %v", ErrInternal, err)
	}

	resp := &models.ParkingStatusResponse{
		FreeSlots:   counts[domain.StateFree],
		BookedSlots: counts[domain.StateBooked],
		ParkedSlots: counts[domain.StateParked],
	}
	resp.TotalSlots = resp.FreeSlots + resp.BookedSlots + resp.ParkedSlots

	return resp, nil
}

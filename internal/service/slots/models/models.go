package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotResponse ответ с данными слота
type SlotResponse struct {
	SlotID        string     `json:"slotId"`
	State         string     `json:"state"`
	OccupantPlate *string    `json:"occupantPlate,omitempty"`
	BookedAt      *time.Time `json:"bookedAt,omitempty"`
	ParkedAt      *time.Time `json:"parkedAt,omitempty"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// ParkingStatusResponse сводка занятости парковки
type ParkingStatusResponse struct {
	TotalSlots  int `json:"totalSlots"`
	FreeSlots   int `json:"freeSlots"`
	BookedSlots int `json:"bookedSlots"`
	ParkedSlots int `json:"parkedSlots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		SlotID:        s.SlotID,
		State:         string(s.State),
		OccupantPlate: s.OccupantPlate,
		BookedAt:      s.BookedAt,
		ParkedAt:      s.ParkedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		if slotResp := FromDomainSlot(s); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}
	return resp
}

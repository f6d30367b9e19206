package domain

import "time"

// SlotState represents the lifecycle state of a parking slot
type SlotState string

const (
	StateFree   SlotState = "free"
	StateBooked SlotState = "booked"
	StateParked SlotState = "parked"
)

// Slot represents a physical parking slot in the system
// The slot pool is created once at bootstrap and slots are never deleted;
// they only cycle through Free -> Booked -> Parked -> Free
type Slot struct {
	SlotID        string
	State         SlotState
	OccupantPlate *string
	BookedAt      *time.Time
	ParkedAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsFree returns true if the slot has no occupant
func (s *Slot) IsFree() bool {
	return s.State == StateFree
}

// IsBooked returns true if the slot is booked but the vehicle has not arrived yet
func (s *Slot) IsBooked() bool {
	return s.State == StateBooked
}

// IsParked returns true if a vehicle is physically parked in the slot
func (s *Slot) IsParked() bool {
	return s.State == StateParked
}

// IsOccupiedBy returns true if the slot is currently held by the given plate
func (s *Slot) IsOccupiedBy(plate string) bool {
	return s.State != StateFree && s.OccupantPlate != nil && *s.OccupantPlate == plate
}

// EntryTime returns the timestamp fee calculation should bill from:
// the moment the vehicle parked, falling back to the booking time
func (s *Slot) EntryTime() *time.Time {
	if s.ParkedAt != nil {
		return s.ParkedAt
	}
	return s.BookedAt
}

// IsConsistent checks the core invariant: a slot has an occupant
// if and only if it is not free
func (s *Slot) IsConsistent() bool {
	if s.State == StateFree {
		return s.OccupantPlate == nil
	}
	return s.OccupantPlate != nil
}

// ValidSlotStates lists every state a slot record may hold
var ValidSlotStates = []SlotState{StateFree, StateBooked, StateParked}

// ToSlotState converts a string into a SlotState, reporting whether it is valid
func ToSlotState(s string) (SlotState, bool) {
	state := SlotState(s)
	for _, valid := range ValidSlotStates {
		if state == valid {
			return state, true
		}
	}
	return "", false
}

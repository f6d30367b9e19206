package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizePlate("abc123"))
	assert.Equal(t, "ABC123", NormalizePlate("  ABC123  "))
	assert.Equal(t, "ABC123", NormalizePlate("\tabc123\n"))
	assert.Equal(t, "", NormalizePlate("   "))
}

func TestIsOccupiedBy(t *testing.T) {
	booked := &Slot{SlotID: "1", State: StateBooked, OccupantPlate: ptr.Ptr("ABC123")}
	assert.True(t, booked.IsOccupiedBy("ABC123"))
	assert.False(t, booked.IsOccupiedBy("XYZ789"))

	free := &Slot{SlotID: "1", State: StateFree}
	assert.False(t, free.IsOccupiedBy("ABC123"))
}

func TestEntryTimePrefersParkedAt(t *testing.T) {
	bookedAt := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	parkedAt := time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC)

	s := &Slot{State: StateParked, BookedAt: &bookedAt, ParkedAt: &parkedAt}
	require.NotNil(t, s.EntryTime())
	assert.Equal(t, parkedAt, *s.EntryTime())

	// Без отметки о парковке считаем от брони
	s = &Slot{State: StateBooked, BookedAt: &bookedAt}
	require.NotNil(t, s.EntryTime())
	assert.Equal(t, bookedAt, *s.EntryTime())

	s = &Slot{State: StateFree}
	assert.Nil(t, s.EntryTime())
}

func TestIsConsistent(t *testing.T) {
	assert.True(t, (&Slot{State: StateFree}).IsConsistent())
	assert.True(t, (&Slot{State: StateBooked, OccupantPlate: ptr.Ptr("ABC123")}).IsConsistent())

	// Свободный слот с номером и занятый без номера - оба нарушения
	assert.False(t, (&Slot{State: StateFree, OccupantPlate: ptr.Ptr("ABC123")}).IsConsistent())
	assert.False(t, (&Slot{State: StateParked}).IsConsistent())
}

func TestToSlotState(t *testing.T) {
	for _, valid := range ValidSlotStates {
		state, ok := ToSlotState(string(valid))
		assert.True(t, ok)
		assert.Equal(t, valid, state)
	}

	_, ok := ToSlotState("reserved")
	assert.False(t, ok)
}

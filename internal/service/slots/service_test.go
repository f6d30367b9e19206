package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeSlotRepo struct {
	slots []*domain.Slot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, slotID string) (*domain.Slot, error) {
	for _, s := range f.slots {
		if s.SlotID == slotID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) ListByState(_ context.Context, state domain.SlotState) ([]*domain.Slot, error) {
	var out []*domain.Slot
	for _, s := range f.slots {
		if s.State == state {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) ListAll(_ context.Context) ([]*domain.Slot, error) {
	out := make([]*domain.Slot, 0, len(f.slots))
	for _, s := range f.slots {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeSlotRepo) CountByState(_ context.Context) (map[domain.SlotState]int, error) {
	counts := make(map[domain.SlotState]int)
	for _, s := range f.slots {
		counts[s.State]++
	}
	return counts, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: []*domain.Slot{
		{SlotID: "1", State: domain.StateFree},
		{SlotID: "2", State: domain.StateBooked, OccupantPlate: ptr.Ptr("ABC123")},
		{SlotID: "3", State: domain.StateParked, OccupantPlate: ptr.Ptr("XYZ789")},
		{SlotID: "4", State: domain.StateFree},
	}}
}

func TestListAvailable(t *testing.T) {
	svc := NewService(testRepo(), nopLogger{})

	resp, err := svc.ListAvailable(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	for _, s := range resp.Slots {
		assert.Equal(t, string(domain.StateFree), s.State)
		assert.Nil(t, s.OccupantPlate)
	}
}

func TestListAll(t *testing.T) {
	svc := NewService(testRepo(), nopLogger{})

	resp, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 4)
}

func TestStatus(t *testing.T) {
	svc := NewService(testRepo(), nopLogger{})

	resp, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalSlots)
	assert.Equal(t, 2, resp.FreeSlots)
	assert.Equal(t, 1, resp.BookedSlots)
	assert.Equal(t, 1, resp.ParkedSlots)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(testRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), "404")

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

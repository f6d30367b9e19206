package release_slot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ParkingService/internal/service/fees"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// fakeStore in-memory реализация репозиториев слотов и пользователей
type fakeStore struct {
	mu    sync.Mutex
	slots map[string]*domain.Slot
	users map[string]*domain.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots: make(map[string]*domain.Slot),
		users: make(map[string]*domain.User),
	}
}

func (f *fakeStore) addSlot(s domain.Slot) {
	f.slots[s.SlotID] = &s
}

func (f *fakeStore) addUser(u domain.User) {
	f.users[u.VehiclePlate] = &u
}

func (f *fakeStore) GetByID(_ context.Context, slotID string) (*domain.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.slots[slotID]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStore) TryTransition(_ context.Context, slotID string, expected, next domain.SlotState, occupantPlate *string, ts time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.slots[slotID]
	if !ok || s.State != expected {
		return slotRepo.ErrStateConflict
	}
	if next == domain.StateBooked && s.OccupantPlate != nil {
		return slotRepo.ErrStateConflict
	}

	s.State = next
	switch next {
	case domain.StateBooked:
		s.OccupantPlate = occupantPlate
		s.BookedAt = &ts
	case domain.StateParked:
		s.ParkedAt = &ts
	}
	return nil
}

func (f *fakeStore) Clear(_ context.Context, slotID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.slots[slotID]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.State = domain.StateFree
	s.OccupantPlate = nil
	s.BookedAt = nil
	s.ParkedAt = nil
	return nil
}

func (f *fakeStore) GetByPlate(_ context.Context, plate string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[plate]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeStore) SetBookedSlot(_ context.Context, plate string, slotID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[plate]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.BookedSlot = slotID
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(store *fakeStore) *UseCase {
	uc := NewUseCase(store, store, fees.NewCalculator(2.50), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestReleaseParkedSlotChargesFee(t *testing.T) {
	store := newFakeStore()
	store.addSlot(domain.Slot{
		SlotID:        "1",
		State:         domain.StateParked,
		OccupantPlate: ptr.Ptr("ABC123"),
		BookedAt:      ptr.Ptr(testNow.Add(-3 * time.Hour)),
		ParkedAt:      ptr.Ptr(testNow.Add(-2 * time.Hour)),
	})
	store.addUser(domain.User{VehiclePlate: "ABC123", Name: "Ivan", BookedSlot: ptr.Ptr("1")})

	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "1"})

	require.NoError(t, err)
	assert.Equal(t, "1", resp.SlotID)
	assert.Equal(t, "ABC123", resp.VehiclePlate)
	require.NotNil(t, resp.Fee)
	assert.InDelta(t, 5.00, *resp.Fee, 0.001)
	// Стоянка считается от фактической парковки, не от брони
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, testNow.Add(-2*time.Hour), *resp.TimeIn)

	slot := store.slots["1"]
	assert.Equal(t, domain.StateFree, slot.State)
	assert.Nil(t, slot.OccupantPlate)
	assert.Nil(t, slot.BookedAt)
	assert.Nil(t, slot.ParkedAt)

	assert.Nil(t, store.users["ABC123"].BookedSlot)
}

func TestReleaseEmployeeParksFree(t *testing.T) {
	store := newFakeStore()
	store.addSlot(domain.Slot{
		SlotID:        "1",
		State:         domain.StateParked,
		OccupantPlate: ptr.Ptr("EMP001"),
		ParkedAt:      ptr.Ptr(testNow.Add(-8 * time.Hour)),
	})
	store.addUser(domain.User{VehiclePlate: "EMP001", Name: "Olga", IsEmployee: true, BookedSlot: ptr.Ptr("1")})

	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "1"})

	require.NoError(t, err)
	require.NotNil(t, resp.Fee)
	assert.Zero(t, *resp.Fee)
}

func TestReleaseBookedSlotCancelsWithoutFee(t *testing.T) {
	store := newFakeStore()
	store.addSlot(domain.Slot{
		SlotID:        "1",
		State:         domain.StateBooked,
		OccupantPlate: ptr.Ptr("ABC123"),
		BookedAt:      ptr.Ptr(testNow.Add(-time.Hour)),
	})
	store.addUser(domain.User{VehiclePlate: "ABC123", Name: "Ivan", BookedSlot: ptr.Ptr("1")})

	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "1"})

	require.NoError(t, err)
	assert.Nil(t, resp.Fee)
	assert.Equal(t, domain.StateFree, store.slots["1"].State)
	assert.Nil(t, store.users["ABC123"].BookedSlot)
}

func TestReleaseFreeSlotIsNoop(t *testing.T) {
	store := newFakeStore()
	store.addSlot(domain.Slot{SlotID: "1", State: domain.StateFree})

	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "1"})

	require.NoError(t, err)
	assert.Empty(t, resp.VehiclePlate)
	assert.Nil(t, resp.Fee)
	assert.Equal(t, domain.StateFree, store.slots["1"].State)
}

func TestReleaseUnregisteredOccupant(t *testing.T) {
	// Слот занят номером, которого нет в реестре пользователей:
	// слот всё равно освобождается, стоимость считается по общей ставке
	store := newFakeStore()
	store.addSlot(domain.Slot{
		SlotID:        "1",
		State:         domain.StateParked,
		OccupantPlate: ptr.Ptr("GHOST1"),
		ParkedAt:      ptr.Ptr(testNow.Add(-time.Hour)),
	})

	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "1"})

	require.NoError(t, err)
	require.NotNil(t, resp.Fee)
	assert.InDelta(t, 2.50, *resp.Fee, 0.001)
	assert.Equal(t, domain.StateFree, store.slots["1"].State)
}

func TestReleaseMissingSlot(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{SlotID: "404"})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestReleaseEmptySlotID(t *testing.T) {
	store := newFakeStore()
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{SlotID: ""})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReleaseDetachFailureDoesNotFailRelease(t *testing.T) {
	// Отвязка брони падает (пользователь исчез между чтением и записью) -
	// освобождение слота всё равно успешно
	store := newFakeStore()
	store.addSlot(domain.Slot{
		SlotID:        "1",
		State:         domain.StateBooked,
		OccupantPlate: ptr.Ptr("ABC123"),
		BookedAt:      ptr.Ptr(testNow.Add(-time.Minute)),
	})

	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "1"})

	require.NoError(t, err)
	assert.Equal(t, "ABC123", resp.VehiclePlate)
	assert.Equal(t, domain.StateFree, store.slots["1"].State)
}

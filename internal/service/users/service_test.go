package users

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ParkingService/internal/service/users/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, exists := f.users[u.VehiclePlate]; exists {
		return nil, userRepo.ErrPlateAlreadyRegistered
	}
	created := *u
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.users[u.VehiclePlate] = &created
	copied := created
	return &copied, nil
}

func (f *fakeUserRepo) GetByPlate(_ context.Context, plate string) (*domain.User, error) {
	u, ok := f.users[plate]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByNameAndPlate(_ context.Context, name, plate string) (*domain.User, error) {
	u, ok := f.users[plate]
	if !ok || u.Name != name {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

type fakeSlotRepo struct {
	slots map[string]*domain.Slot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*domain.Slot)}
}

func (f *fakeSlotRepo) GetByID(_ context.Context, slotID string) (*domain.Slot, error) {
	s, ok := f.slots[slotID]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotRepo) GetByOccupant(_ context.Context, plate string) (*domain.Slot, error) {
	for _, s := range f.slots {
		if s.IsOccupiedBy(plate) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeUserRepo, *fakeSlotRepo) {
	users := newFakeUserRepo()
	slots := newFakeSlotRepo()
	return NewService(users, slots, nopLogger{}), users, slots
}

func TestRegisterNormalizesPlate(t *testing.T) {
	svc, users, _ := newTestService()

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:         "  Ivan  ",
		VehiclePlate: " abc123 ",
		VehicleType:  "sedan",
	})

	require.NoError(t, err)
	assert.Equal(t, "ABC123", resp.VehiclePlate)
	assert.Equal(t, "Ivan", resp.Name)
	assert.Contains(t, users.users, "ABC123")
}

func TestRegisterDuplicatePlate(t *testing.T) {
	svc, _, _ := newTestService()

	req := &models.RegisterRequest{Name: "Ivan", VehiclePlate: "ABC123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	// Повторная регистрация того же номера, даже в другом регистре
	_, err = svc.Register(context.Background(), &models.RegisterRequest{Name: "Petr", VehiclePlate: "abc123"})
	assert.ErrorIs(t, err, ErrPlateAlreadyRegistered)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "", VehiclePlate: "ABC123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, &models.RegisterRequest{Name: "Ivan", VehiclePlate: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, &models.RegisterRequest{
		Name:         "Ivan",
		VehiclePlate: strings.Repeat("A", domain.MaxPlateLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginExistingUser(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Ivan", VehiclePlate: "ABC123"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &models.LoginRequest{Name: "Ivan", VehiclePlate: "abc123"})

	require.NoError(t, err)
	assert.Equal(t, "ABC123", resp.VehiclePlate)
}

func TestLoginAutoRegistersNewUser(t *testing.T) {
	svc, users, _ := newTestService()

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Name: "Ivan", VehiclePlate: "NEW001"})

	require.NoError(t, err)
	assert.Equal(t, "NEW001", resp.VehiclePlate)
	assert.Contains(t, users.users, "NEW001")
}

func TestLoginPlateRegisteredUnderDifferentName(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "Ivan", VehiclePlate: "ABC123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Name: "Petr", VehiclePlate: "ABC123"})
	assert.ErrorIs(t, err, ErrPlateAlreadyRegistered)
}

func TestGetProfileShowsLiveBookingState(t *testing.T) {
	svc, users, slots := newTestService()

	users.users["ABC123"] = &domain.User{VehiclePlate: "ABC123", Name: "Ivan", BookedSlot: ptr.Ptr("7")}
	slots.slots["7"] = &domain.Slot{SlotID: "7", State: domain.StateParked, OccupantPlate: ptr.Ptr("ABC123")}

	resp, err := svc.GetProfile(context.Background(), "abc123")

	require.NoError(t, err)
	require.NotNil(t, resp.BookedSlot)
	assert.Equal(t, "7", *resp.BookedSlot)
	require.NotNil(t, resp.BookedSlotState)
	assert.Equal(t, string(domain.StateParked), *resp.BookedSlotState)
}

func TestGetProfileHidesStaleBookingReference(t *testing.T) {
	svc, users, slots := newTestService()

	users.users["ABC123"] = &domain.User{VehiclePlate: "ABC123", Name: "Ivan", BookedSlot: ptr.Ptr("7")}
	slots.slots["7"] = &domain.Slot{SlotID: "7", State: domain.StateFree}

	resp, err := svc.GetProfile(context.Background(), "ABC123")

	require.NoError(t, err)
	assert.Nil(t, resp.BookedSlot)
	assert.Nil(t, resp.BookedSlotState)
}

func TestGetProfileRecoversLostBookingReference(t *testing.T) {
	// Слот числится за номером, но ссылка у пользователя потерялась:
	// профиль показывает слот по данным реестра слотов
	svc, users, slots := newTestService()

	users.users["ABC123"] = &domain.User{VehiclePlate: "ABC123", Name: "Ivan"}
	slots.slots["5"] = &domain.Slot{SlotID: "5", State: domain.StateBooked, OccupantPlate: ptr.Ptr("ABC123")}

	resp, err := svc.GetProfile(context.Background(), "ABC123")

	require.NoError(t, err)
	require.NotNil(t, resp.BookedSlot)
	assert.Equal(t, "5", *resp.BookedSlot)
	require.NotNil(t, resp.BookedSlotState)
	assert.Equal(t, string(domain.StateBooked), *resp.BookedSlotState)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetProfile(context.Background(), "GHOST1")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

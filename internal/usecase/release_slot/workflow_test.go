package release_slot

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/fees"
	bookSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
	parkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/park_vehicle"
)

// Полный жизненный цикл слота через все три операции поверх общего
// in-memory хранилища
func TestFullParkingCycle(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	for i := 1; i <= 100; i++ {
		store.addSlot(domain.Slot{SlotID: strconv.Itoa(i), State: domain.StateFree})
	}
	store.addUser(domain.User{VehiclePlate: "ABC123", Name: "Ivan"})
	store.addUser(domain.User{VehiclePlate: "XYZ789", Name: "Petr"})

	book := bookSlot.NewUseCase(store, store, nopLogger{})
	park := parkVehicle.NewUseCase(store, nopLogger{})
	release := NewUseCase(store, store, fees.NewCalculator(2.50), nopLogger{})

	// Бронирование свободного слота проходит
	bookResp, err := book.Execute(ctx, &bookSlot.Request{SlotID: "1", VehiclePlate: "ABC123"})
	require.NoError(t, err)
	assert.Equal(t, "ABC123", bookResp.VehiclePlate)
	assert.Equal(t, domain.StateBooked, store.slots["1"].State)

	// Второй пользователь получает отказ на тот же слот
	_, err = book.Execute(ctx, &bookSlot.Request{SlotID: "1", VehiclePlate: "XYZ789"})
	assert.ErrorIs(t, err, bookSlot.ErrSlotAlreadyBooked)

	// Прибытие автомобиля
	parkResp, err := park.Execute(ctx, &parkVehicle.Request{SlotID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "ABC123", parkResp.VehiclePlate)
	assert.Equal(t, domain.StateParked, store.slots["1"].State)

	// Выезд: слот возвращается в свободное состояние, ссылка пользователя
	// отвязана, стоимость неотрицательна
	releaseResp, err := release.Execute(ctx, &Request{SlotID: "1"})
	require.NoError(t, err)
	require.NotNil(t, releaseResp.Fee)
	assert.GreaterOrEqual(t, *releaseResp.Fee, 0.0)

	slot := store.slots["1"]
	assert.Equal(t, domain.StateFree, slot.State)
	assert.Nil(t, slot.OccupantPlate)
	assert.Nil(t, slot.BookedAt)
	assert.Nil(t, slot.ParkedAt)
	assert.Nil(t, store.users["ABC123"].BookedSlot)

	// Освобожденный слот можно забронировать снова
	_, err = book.Execute(ctx, &bookSlot.Request{SlotID: "1", VehiclePlate: "XYZ789"})
	require.NoError(t, err)
}

package book_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
)

type fakeUseCase struct {
	resp *bookSlot.Response
	err  error

	gotReq *bookSlot.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookSlot.Request) (*bookSlot.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/slots/{slotId}/book", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/1/book", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) handlers.Envelope {
	t.Helper()

	var envelope handlers.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestHandleBookSuccess(t *testing.T) {
	uc := &fakeUseCase{
		resp: &bookSlot.Response{
			SlotID:       "1",
			VehiclePlate: "ABC123",
			BookedAt:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			UserName:     "Ivan",
		},
	}

	rec := doRequest(t, uc, `{"vehiclePlate": "abc123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// Идентификатор слота берётся из пути, номер - из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "1", uc.gotReq.SlotID)
	assert.Equal(t, "abc123", uc.gotReq.VehiclePlate)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Message)
	assert.Nil(t, envelope.Error)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1", data["slotId"])
	assert.Equal(t, "ABC123", data["vehiclePlate"])
	assert.Equal(t, "2026-03-10T12:00:00Z", data["bookedAt"])
}

func TestHandleBookConflict(t *testing.T) {
	uc := &fakeUseCase{err: bookSlot.ErrSlotAlreadyBooked}

	rec := doRequest(t, uc, `{"vehiclePlate": "ABC123"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, http.StatusConflict, envelope.Error.Code)
	assert.Nil(t, envelope.Data)
}

func TestHandleBookUnknownUser(t *testing.T) {
	uc := &fakeUseCase{err: bookSlot.ErrUserNotFound}

	rec := doRequest(t, uc, `{"vehiclePlate": "GHOST1"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestHandleBookMalformedBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestHandleBookInternalError(t *testing.T) {
	uc := &fakeUseCase{err: bookSlot.ErrInternal}

	rec := doRequest(t, uc, `{"vehiclePlate": "ABC123"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

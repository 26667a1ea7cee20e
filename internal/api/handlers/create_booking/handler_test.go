package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"courtId": "court-1",
	"clientName": "Juan Pérez",
	"clientEmail": "juan@email.com",
	"clientPhone": "+54 11 1234-5678",
	"date": "2026-01-15",
	"startTime": "10:00",
	"durationMinutes": 90
}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:              1,
		CourtID:         "court-1",
		CourtName:       "Padel Court Central",
		ClientName:      "Juan Pérez",
		ClientEmail:     "juan@email.com",
		Date:            time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 90,
		Status:          "requested",
		TotalPrice:      3750,
		CreatedAt:       time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-01-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "requested", resp.Status)
	assert.Equal(t, 3750.0, resp.TotalPrice)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "slot conflict", ucErr: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "court not found", ucErr: createBooking.ErrCourtNotFound, wantStatus: http.StatusNotFound},
		{name: "court unavailable", ucErr: createBooking.ErrCourtUnavailable, wantStatus: http.StatusBadRequest},
		{name: "invalid duration", ucErr: createBooking.ErrInvalidDuration, wantStatus: http.StatusBadRequest},
		{name: "invalid start time", ucErr: createBooking.ErrInvalidStartTime, wantStatus: http.StatusBadRequest},
		{name: "invalid input", ucErr: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", ucErr: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.ucErr}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadPayloads(t *testing.T) {
	uc := &stubUseCase{}

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not-json"},
		{name: "unknown field", body: `{"unknownField": true}`},
		{name: "bad date format", body: `{"courtId": "court-1", "clientName": "a", "clientEmail": "a@b.c", "date": "15/01/2026", "startTime": "10:00", "durationMinutes": 90}`},
		{name: "bad time format", body: `{"courtId": "court-1", "clientName": "a", "clientEmail": "a@b.c", "date": "2026-01-15", "startTime": "10h00", "durationMinutes": 90}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, uc, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/catalog"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingNotifier struct {
	types    []domain.NotificationType
	titles   []string
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, typ domain.NotificationType, title, message string) error {
	n.types = append(n.types, typ)
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestUseCase(t *testing.T) (*UseCase, *bookingRepo.Repository, *recordingNotifier) {
	t.Helper()

	repo := bookingRepo.NewRepository()
	notifier := &recordingNotifier{}

	uc := NewUseCase(repo, catalog.Default(), notifier, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC)}

	return uc, repo, notifier
}

func validRequest() *Request {
	return &Request{
		CourtID:         "court-1",
		ClientName:      "Juan Pérez",
		ClientEmail:     "juan@email.com",
		ClientPhone:     "+54 11 1234-5678",
		Date:            time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 90,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	uc, repo, notifier := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "court-1", resp.CourtID)
	assert.Equal(t, "Padel Court Central", resp.CourtName)
	assert.Equal(t, string(domain.StatusRequested), resp.Status)
	assert.Equal(t, time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC), resp.CreatedAt)

	// Цена фиксируется при создании: 2500/час * 1.5 часа
	assert.Equal(t, 3750.0, resp.TotalPrice)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRequested, stored.Status)

	// Side-effect: одно уведомление о новой заявке
	require.Len(t, notifier.types, 1)
	assert.Equal(t, domain.NotificationBooking, notifier.types[0])
	assert.Equal(t, "Новая заявка", notifier.titles[0])
	assert.Contains(t, notifier.messages[0], "Juan Pérez")
	assert.Contains(t, notifier.messages[0], "Padel Court Central")
}

func TestExecute_HourlyPrice(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// Часовая бронь стоит ровно часовую ставку корта (court-4: 3000/час)
	req := validRequest()
	req.CourtID = "court-4"
	req.StartTime = "14:00"
	req.DurationMinutes = 60

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, resp.TotalPrice)
}

func TestExecute_SlotConflict(t *testing.T) {
	uc, _, notifier := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Пересекающийся интервал того же корта отклоняется при вставке
	second := validRequest()
	second.ClientEmail = "maria@email.com"
	second.StartTime = "11:00"
	second.DurationMinutes = 60

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Уведомление только от первой, успешной заявки
	assert.Len(t, notifier.types, 1)
}

func TestExecute_BackToBackBookings(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Интервал, начинающийся ровно в момент окончания, не конфликтует
	second := validRequest()
	second.StartTime = "11:30"
	second.DurationMinutes = 60

	_, err = uc.Execute(context.Background(), second)
	assert.NoError(t, err)
}

func TestExecute_CourtUnavailable(t *testing.T) {
	repo := bookingRepo.NewRepository()
	closedCatalog := catalog.New([]domain.Court{
		{ID: "court-1", Name: "Padel Court Central", Type: domain.CourtPadel, PricePerHour: 2500, Available: false},
	})

	uc := NewUseCase(repo, closedCatalog, &recordingNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtUnavailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc, _, notifier := newTestUseCase(t)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "unknown court",
			mutate:  func(r *Request) { r.CourtID = "court-999" },
			wantErr: ErrCourtNotFound,
		},
		{
			name:    "missing client name",
			mutate:  func(r *Request) { r.ClientName = "   " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing client email",
			mutate:  func(r *Request) { r.ClientEmail = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration not multiple of grid step",
			mutate:  func(r *Request) { r.DurationMinutes = 45 },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "duration not in allowed set",
			mutate:  func(r *Request) { r.DurationMinutes = 30 },
			wantErr: ErrInvalidDuration,
		},
		{
			// court-5 - beach tennis, максимум 90 минут
			name: "duration not allowed for court type",
			mutate: func(r *Request) {
				r.CourtID = "court-5"
				r.DurationMinutes = 120
			},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "start time off grid",
			mutate:  func(r *Request) { r.StartTime = "10:15" },
			wantErr: ErrInvalidStartTime,
		},
		{
			name:    "start time before opening",
			mutate:  func(r *Request) { r.StartTime = "07:30" },
			wantErr: ErrInvalidStartTime,
		},
		{
			name: "interval extends past closing",
			mutate: func(r *Request) {
				r.StartTime = "21:30"
				r.DurationMinutes = 90
			},
			wantErr: ErrInvalidStartTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Отклоненные заявки не порождают уведомлений
	assert.Empty(t, notifier.types)
}

func TestExecute_LastBookableSlot(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// Часовая бронь с 21:30 занимает под-слоты 21:30 и 22:00 - последний
	// помещающийся вариант
	req := validRequest()
	req.StartTime = "21:30"
	req.DurationMinutes = 60

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

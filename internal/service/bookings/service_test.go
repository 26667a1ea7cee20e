package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingNotifier struct {
	types  []domain.NotificationType
	titles []string
}

func (n *recordingNotifier) Notify(_ context.Context, typ domain.NotificationType, title, _ string) error {
	n.types = append(n.types, typ)
	n.titles = append(n.titles, title)
	return nil
}

func newTestService(t *testing.T) (*Service, *bookingRepo.Repository, *recordingNotifier) {
	t.Helper()
	repo := bookingRepo.NewRepository()
	notifier := &recordingNotifier{}
	return NewService(repo, notifier, nopLogger{}), repo, notifier
}

func seedBooking(t *testing.T, repo *bookingRepo.Repository, email string, date time.Time, start types.TimeString, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Booking{
		CourtID:         "court-1",
		CourtName:       "Padel Court Central",
		ClientName:      "Juan Pérez",
		ClientEmail:     email,
		Date:            date,
		StartTime:       start,
		DurationMinutes: 90,
		Status:          status,
		TotalPrice:      3750,
	})
	require.NoError(t, err)
	return created
}

func TestUpdateStatus_ForwardTransitions(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	svc, repo, notifier := newTestService(t)
	b := seedBooking(t, repo, "juan@email.com", date, "10:00", domain.StatusRequested)

	resp, err := svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: "deposit"})
	require.NoError(t, err)
	assert.Equal(t, "deposit", resp.Status)

	// Переход в deposit эмитит уведомление о статусе и событие оплаты
	require.Len(t, notifier.types, 2)
	assert.Equal(t, domain.NotificationBooking, notifier.types[0])
	assert.Equal(t, domain.NotificationPayment, notifier.types[1])

	resp, err = svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	resp, err = svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: "finished"})
	require.NoError(t, err)
	assert.Equal(t, "finished", resp.Status)
}

func TestUpdateStatus_SkipDeposit(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	svc, repo, notifier := newTestService(t)
	b := seedBooking(t, repo, "juan@email.com", date, "10:00", domain.StatusRequested)

	// Короткий путь requested -> confirmed, минуя deposit
	resp, err := svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	// Без события оплаты
	require.Len(t, notifier.types, 1)
	assert.Equal(t, domain.NotificationBooking, notifier.types[0])
}

func TestUpdateStatus_Rejections(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	svc, repo, notifier := newTestService(t)

	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "backwards", from: domain.StatusConfirmed, to: "requested", wantErr: ErrInvalidTransition},
		{name: "skip to finished", from: domain.StatusRequested, to: "finished", wantErr: ErrInvalidTransition},
		{name: "terminal status", from: domain.StatusFinished, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "unknown status value", from: domain.StatusRequested, to: "cancelled", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := seedBooking(t, repo, "juan@email.com", date, "10:00", tt.from)

			_, err := svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, tt.wantErr)

			// Статус в хранилище не изменился
			stored, err := repo.GetByID(ctx, b.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.from, stored.Status)

			require.NoError(t, repo.Delete(ctx, b.ID))
		})
	}

	// Отклоненные переходы не порождают уведомлений
	assert.Empty(t, notifier.types)

	_, err := svc.UpdateStatus(ctx, 999, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	svc, repo, _ := newTestService(t)

	requested := seedBooking(t, repo, "juan@email.com", date, "10:00", domain.StatusRequested)
	require.NoError(t, svc.Cancel(ctx, requested.ID))

	// Отмененная заявка удаляется из коллекции
	_, err := repo.GetByID(ctx, requested.ID)
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)

	// Отмена разрешена только в статусе requested
	for _, st := range []domain.BookingStatus{domain.StatusDeposit, domain.StatusConfirmed, domain.StatusFinished} {
		b := seedBooking(t, repo, "juan@email.com", date, "12:00", st)
		assert.ErrorIs(t, svc.Cancel(ctx, b.ID), ErrCannotCancel, "status %s", st)
		require.NoError(t, repo.Delete(ctx, b.ID))
	}

	assert.ErrorIs(t, svc.Cancel(ctx, 999), ErrBookingNotFound)
}

func TestGetClientHistory(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	svc, repo, _ := newTestService(t)
	email := "juan@email.com"

	// Завтра и послезавтра - предстоящие
	afterTomorrow := seedBooking(t, repo, email, today.AddDate(0, 0, 2), "10:00", domain.StatusConfirmed)
	tomorrow := seedBooking(t, repo, email, today.AddDate(0, 0, 1), "10:00", domain.StatusRequested)

	// Сегодняшняя незавершенная бронь - тоже предстоящая
	todays := seedBooking(t, repo, email, today, "18:00", domain.StatusDeposit)

	// Вчерашняя - прошедшая по дате
	yesterday := seedBooking(t, repo, email, today.AddDate(0, 0, -1), "10:00", domain.StatusConfirmed)

	// Завершенная бронь на будущую дату - все равно прошедшая
	finishedFuture := seedBooking(t, repo, email, today.AddDate(0, 0, 3), "10:00", domain.StatusFinished)

	// Чужая бронь не попадает в историю
	seedBooking(t, repo, "maria@email.com", today, "20:00", domain.StatusRequested)

	history, err := svc.GetClientHistory(ctx, &models.ClientHistoryRequest{
		ClientEmail: email,
		Today:       ptr.Ptr(today),
	})
	require.NoError(t, err)

	// Предстоящие по возрастанию даты
	require.Len(t, history.Upcoming, 3)
	assert.Equal(t, todays.ID, history.Upcoming[0].ID)
	assert.Equal(t, tomorrow.ID, history.Upcoming[1].ID)
	assert.Equal(t, afterTomorrow.ID, history.Upcoming[2].ID)

	// Прошедшие по убыванию даты
	require.Len(t, history.Past, 2)
	assert.Equal(t, finishedFuture.ID, history.Past[0].ID)
	assert.Equal(t, yesterday.ID, history.Past[1].ID)
}

func TestGetClientHistory_RequiresEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetClientHistory(context.Background(), &models.ClientHistoryRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	svc, repo, _ := newTestService(t)
	b := seedBooking(t, repo, "juan@email.com", date, "10:00", domain.StatusRequested)

	resp, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, "2026-01-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

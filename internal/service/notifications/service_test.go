package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/notification"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(notificationRepo.NewRepository(), nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 1, 12, 16, 45, 0, 0, time.UTC)}
	return svc
}

func TestNotifyAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.Notify(ctx, domain.NotificationBooking, "Новая заявка", "msg-1"))
	require.NoError(t, svc.Notify(ctx, domain.NotificationReview, "Новый отзыв", "msg-2"))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, 2, list.UnreadCount)

	// Свежие в начале
	assert.Equal(t, "Новый отзыв", list.Notifications[0].Title)
	assert.Equal(t, string(domain.NotificationReview), list.Notifications[0].Type)
	assert.False(t, list.Notifications[0].Read)
	assert.Equal(t, time.Date(2026, 1, 12, 16, 45, 0, 0, time.UTC), list.Notifications[0].Timestamp)
}

func TestMarkReadAndMarkAllRead(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.Notify(ctx, domain.NotificationBooking, "Новая заявка", "msg-1"))
	require.NoError(t, svc.Notify(ctx, domain.NotificationPayment, "Получена предоплата", "msg-2"))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)

	require.NoError(t, svc.MarkRead(ctx, list.Notifications[0].ID))

	unread, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	// Пометка отсутствующего ID не является ошибкой
	assert.NoError(t, svc.MarkRead(ctx, 999))

	require.NoError(t, svc.MarkAllRead(ctx))
	unread, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
}

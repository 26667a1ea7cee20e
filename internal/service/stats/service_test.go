package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/review"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *bookingRepo.Repository, *reviewRepo.Repository) {
	t.Helper()
	bookings := bookingRepo.NewRepository()
	reviews := reviewRepo.NewRepository()
	return NewService(bookings, reviews, nopLogger{}), bookings, reviews
}

func seedBooking(t *testing.T, repo *bookingRepo.Repository, date time.Time, status domain.BookingStatus, price float64) {
	t.Helper()
	_, err := repo.Create(context.Background(), &domain.Booking{
		CourtID:         "court-1",
		ClientEmail:     "juan@email.com",
		Date:            date,
		StartTime:       "10:00",
		DurationMinutes: 90,
		Status:          status,
		TotalPrice:      price,
	})
	require.NoError(t, err)
}

func seedReview(t *testing.T, repo *reviewRepo.Repository, rating int) {
	t.Helper()
	_, err := repo.Create(context.Background(), &domain.Review{
		CourtID:    "court-1",
		ClientName: "Juan Pérez",
		Rating:     rating,
		Comment:    "ok",
		Date:       time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestCollect(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	svc, bookings, reviews := newTestService(t)

	seedBooking(t, bookings, today, domain.StatusRequested, 1000)
	seedBooking(t, bookings, today, domain.StatusDeposit, 2000)
	seedBooking(t, bookings, today.AddDate(0, 0, 1), domain.StatusConfirmed, 3000)
	seedBooking(t, bookings, today.AddDate(0, 0, -1), domain.StatusFinished, 4000)

	seedReview(t, reviews, 5)
	seedReview(t, reviews, 4)
	seedReview(t, reviews, 4)

	stats, err := svc.Collect(ctx, ptr.Ptr(today))
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 2, stats.TodayBookings)

	// Выручка только по confirmed и finished
	assert.Equal(t, 7000.0, stats.TotalRevenue)

	// В ожидании: requested + deposit
	assert.Equal(t, 2, stats.PendingBookings)

	assert.Equal(t, map[string]int{
		"requested": 1,
		"deposit":   1,
		"confirmed": 1,
		"finished":  1,
	}, stats.StatusCounts)

	// (5+4+4)/3 = 4.333... округляется до одного знака
	assert.Equal(t, 4.3, stats.AvgRating)
	assert.Equal(t, 3, stats.TotalReviews)
}

func TestCollect_EmptyCollections(t *testing.T) {
	svc, _, _ := newTestService(t)
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	stats, err := svc.Collect(context.Background(), ptr.Ptr(today))
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalBookings)
	assert.Equal(t, 0, stats.TodayBookings)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, 0, stats.PendingBookings)

	// Средняя оценка пустой коллекции определена как 0
	assert.Equal(t, 0.0, stats.AvgRating)
	assert.Equal(t, 0, stats.TotalReviews)

	// Все статусы присутствуют в разбивке даже при нуле записей
	for _, st := range domain.AllStatuses {
		count, ok := stats.StatusCounts[string(st)]
		assert.True(t, ok)
		assert.Equal(t, 0, count)
	}
}

func TestCollect_AvgRatingRounding(t *testing.T) {
	svc, _, reviews := newTestService(t)
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	// (5+4)/2 = 4.5 остается как есть
	seedReview(t, reviews, 5)
	seedReview(t, reviews, 4)

	stats, err := svc.Collect(context.Background(), ptr.Ptr(today))
	require.NoError(t, err)
	assert.Equal(t, 4.5, stats.AvgRating)
}

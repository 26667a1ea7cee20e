package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/stats/models"
)

// Service агрегатор статистики. Чистое перевычисление по текущему
// содержимому хранилищ на каждый вызов, без кэширования: стоимость
// линейна от размера коллекций, зато нет производного состояния,
// которое могло бы разойтись с фактом.
type Service struct {
	bookingRepo  BookingRepository
	reviewRepo   ReviewRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр агрегатора статистики
func NewService(
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Collect вычисляет метрики дашборда.
// today - дата "сегодня" для подсчета todayBookings; nil = дата сервера.
func (s *Service) Collect(ctx context.Context, today *time.Time) (*models.DashboardStats, error) {
	day := s.timeProvider.Now()
	if today != nil {
		day = *today
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Collect: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: Collect - failed to list bookings: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		s.logger.Error("Collect: failed to list reviews: %v", err)
		return nil, fmt.Errorf("%w: Collect - failed to list reviews: %v", ErrInternal, err)
	}

	stats := &models.DashboardStats{
		TotalBookings: len(bookings),
		TotalReviews:  len(reviews),
		StatusCounts:  make(map[string]int, len(domain.AllStatuses)),
	}
	for _, st := range domain.AllStatuses {
		stats.StatusCounts[string(st)] = 0
	}

	for _, b := range bookings {
		stats.StatusCounts[string(b.Status)]++

		if sameDay(b.Date, day) {
			stats.TodayBookings++
		}

		// Выручка считается только по confirmed и finished
		if b.Status == domain.StatusConfirmed || b.Status == domain.StatusFinished {
			stats.TotalRevenue += b.TotalPrice
		}
	}

	stats.PendingBookings = stats.StatusCounts[string(domain.StatusRequested)] +
		stats.StatusCounts[string(domain.StatusDeposit)]

	stats.AvgRating = avgRating(reviews)

	s.logger.Info("Collect: total=%d today=%d revenue=%.2f pending=%d reviews=%d",
		stats.TotalBookings, stats.TodayBookings, stats.TotalRevenue, stats.PendingBookings, stats.TotalReviews)

	return stats, nil
}

// avgRating среднее по оценкам, округленное до одного знака.
// Для пустой коллекции определено как 0 (нет деления на ноль).
func avgRating(reviews []*domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// sameDay проверяет, что две даты относятся к одному календарному дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// Notifier интерфейс для эмиссии уведомлений как side-effect мутаций
type Notifier interface {
	Notify(ctx context.Context, typ domain.NotificationType, title, message string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

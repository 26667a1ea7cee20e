package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CreateIfFree атомарно проверяет отсутствие пересечений и вставляет запись
	CreateIfFree(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CourtCatalog интерфейс справочника кортов
type CourtCatalog interface {
	GetCourt(id string) (*domain.Court, error)
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

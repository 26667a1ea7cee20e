package reviews

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByCourtID(ctx context.Context, courtID string) ([]*domain.Review, error)
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

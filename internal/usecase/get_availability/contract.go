package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByCourtAndDate получает все бронирования корта на конкретную дату
	GetByCourtAndDate(ctx context.Context, courtID string, date time.Time) ([]*domain.Booking, error)
}

// CourtCatalog интерфейс справочника кортов
type CourtCatalog interface {
	GetCourt(id string) (*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/notification"
	reviewRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/review"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Apply наполняет хранилища демонстрационными данными.
// Используется только при [demo] seed = true, чтобы поднять сервис
// с заполненным дашбордом без ручного создания бронирований.
func Apply(
	ctx context.Context,
	bookings *bookingRepo.Repository,
	reviews *reviewRepo.Repository,
	notifications *notificationRepo.Repository,
	log Logger,
) error {
	if err := seedBookings(ctx, bookings); err != nil {
		return fmt.Errorf("seed bookings: %w", err)
	}
	if err := seedReviews(ctx, reviews); err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}
	if err := seedNotifications(ctx, notifications); err != nil {
		return fmt.Errorf("seed notifications: %w", err)
	}

	log.Info("Demo data seeded")
	return nil
}

type demoBooking struct {
	courtID         string
	courtName       string
	clientName      string
	clientEmail     string
	clientPhone     string
	date            string
	startTime       string
	durationMinutes int
	status          domain.BookingStatus
	totalPrice      float64
	createdAt       string
}

func seedBookings(ctx context.Context, repo *bookingRepo.Repository) error {
	demo := []demoBooking{
		{"court-1", "Padel Court Central", "Juan Pérez", "juan@email.com", "+54 11 1234-5678",
			"2026-01-15", "10:00", 90, domain.StatusConfirmed, 3750, "2026-01-10T14:30:00Z"},
		{"court-4", "Grand Slam Court", "María García", "maria@email.com", "+54 11 2345-6789",
			"2026-01-15", "14:00", 60, domain.StatusDeposit, 3000, "2026-01-11T09:15:00Z"},
		{"court-6", "Futsal Indoor A", "Carlos López", "carlos@email.com", "+54 11 3456-7890",
			"2026-01-16", "18:00", 120, domain.StatusRequested, 9000, "2026-01-12T16:45:00Z"},
		{"court-2", "Padel Court VIP", "Ana Martínez", "ana@email.com", "+54 11 4567-8901",
			"2026-01-14", "09:00", 90, domain.StatusFinished, 5250, "2026-01-08T11:20:00Z"},
		{"court-8", "Stadium Field", "Roberto Sánchez", "roberto@email.com", "+54 11 5678-9012",
			"2026-01-17", "16:00", 120, domain.StatusConfirmed, 12000, "2026-01-13T10:00:00Z"},
		{"court-5", "Beach Arena", "Laura Torres", "laura@email.com", "+54 11 6789-0123",
			"2026-01-15", "11:00", 60, domain.StatusDeposit, 2800, "2026-01-11T15:30:00Z"},
		{"court-3", "Padel Court Pro", "Diego Fernández", "diego@email.com", "+54 11 7890-1234",
			"2026-01-13", "20:00", 90, domain.StatusFinished, 4200, "2026-01-07T18:00:00Z"},
		{"court-7", "Futsal Indoor B", "Sofía Rodríguez", "sofia@email.com", "+54 11 8901-2345",
			"2026-01-18", "19:00", 60, domain.StatusRequested, 4000, "2026-01-14T12:00:00Z"},
	}

	for _, d := range demo {
		date, err := time.Parse(domain.DateFormat, d.date)
		if err != nil {
			return err
		}
		createdAt, err := time.Parse(time.RFC3339, d.createdAt)
		if err != nil {
			return err
		}
		startTime, err := types.NewTimeStringFromString(d.startTime)
		if err != nil {
			return err
		}

		if _, err := repo.Create(ctx, &domain.Booking{
			CourtID:         d.courtID,
			CourtName:       d.courtName,
			ClientName:      d.clientName,
			ClientEmail:     d.clientEmail,
			ClientPhone:     d.clientPhone,
			Date:            date,
			StartTime:       startTime,
			DurationMinutes: d.durationMinutes,
			Status:          d.status,
			TotalPrice:      d.totalPrice,
			CreatedAt:       createdAt,
		}); err != nil {
			return err
		}
	}
	return nil
}

type demoReview struct {
	courtID    string
	clientName string
	rating     int
	comment    string
	date       string
}

func seedReviews(ctx context.Context, repo *reviewRepo.Repository) error {
	demo := []demoReview{
		{"court-1", "Juan Pérez", 5, "Excelente cancha, muy bien mantenida. La iluminación es perfecta para jugar de noche.", "2026-01-10"},
		{"court-1", "Pedro Gómez", 4, "Muy buena experiencia. El césped sintético está en perfectas condiciones.", "2026-01-08"},
		{"court-2", "Ana Martínez", 5, "El servicio VIP es increíble. Las bebidas y toallas son un plus genial.", "2026-01-09"},
		{"court-4", "María García", 5, "La mejor cancha de tenis de la zona. Superficie impecable.", "2026-01-07"},
		{"court-4", "Lucas Ramírez", 4, "Muy profesional. Las tribunas le dan un toque especial.", "2026-01-05"},
		{"court-5", "Laura Torres", 5, "El ambiente tropical es genial. La arena está perfecta.", "2026-01-06"},
		{"court-6", "Carlos López", 4, "Buena cancha para futsal. El piso es muy rápido.", "2026-01-04"},
		{"court-8", "Roberto Sánchez", 5, "El césped natural es espectacular. Ideal para partidos importantes.", "2026-01-03"},
		{"court-3", "Diego Fernández", 4, "El sistema de grabación es muy útil para mejorar el juego.", "2026-01-02"},
		{"court-7", "Sofía Rodríguez", 4, "Perfecta para entrenamientos de equipo. Buen precio.", "2026-01-01"},
	}

	for _, d := range demo {
		date, err := time.Parse(domain.DateFormat, d.date)
		if err != nil {
			return err
		}

		if _, err := repo.Create(ctx, &domain.Review{
			CourtID:    d.courtID,
			ClientName: d.clientName,
			Rating:     d.rating,
			Comment:    d.comment,
			Date:       date,
		}); err != nil {
			return err
		}
	}
	return nil
}

type demoNotification struct {
	typ       domain.NotificationType
	title     string
	message   string
	timestamp string
	read      bool
}

func seedNotifications(ctx context.Context, repo *notificationRepo.Repository) error {
	demo := []demoNotification{
		{domain.NotificationBooking, "Новая заявка", "Carlos López запросил Futsal Indoor A на 2026-01-16", "2026-01-12T16:45:00Z", false},
		{domain.NotificationReview, "Новый отзыв", "Juan Pérez оставил отзыв 5/5 о Padel Court Central", "2026-01-10T14:30:00Z", false},
		{domain.NotificationPayment, "Получена предоплата", "María García внесла предоплату за Grand Slam Court", "2026-01-11T09:15:00Z", true},
		{domain.NotificationBooking, "Статус обновлен", "Roberto Sánchez подтвердил Stadium Field на 2026-01-17", "2026-01-13T10:00:00Z", false},
		{domain.NotificationReminder, "Напоминание", "3 заявки ожидают подтверждения", "2026-01-14T08:00:00Z", false},
	}

	for _, d := range demo {
		timestamp, err := time.Parse(time.RFC3339, d.timestamp)
		if err != nil {
			return err
		}

		created, err := repo.Create(ctx, d.typ, d.title, d.message, timestamp)
		if err != nil {
			return err
		}
		if d.read {
			if err := repo.MarkRead(ctx, created.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

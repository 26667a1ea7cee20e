package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает все бронирования клиента
// Сравнение email точное, с учетом регистра
func (s *Service) GetClientBookings(ctx context.Context, email string) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%s", email)

	if email == "" {
		return nil, fmt.Errorf("%w: client email is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByClientEmail(ctx, email)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: fetched %d bookings for client=%s", len(bookings), email)
	return models.FromDomainBookingList(bookings), nil
}

// GetClientHistory возвращает историю клиента, разделенную на предстоящие
// и прошедшие бронирования.
// Предстоящие: не finished и дата не раньше today, сортировка по дате вверх.
// Прошедшие: finished (независимо от даты) либо дата раньше today,
// сортировка по дате вниз.
func (s *Service) GetClientHistory(ctx context.Context, req *models.ClientHistoryRequest) (*models.ClientHistoryResponse, error) {
	if req.ClientEmail == "" {
		return nil, fmt.Errorf("%w: client email is required", ErrInvalidInput)
	}

	today := s.timeProvider.Now()
	if req.Today != nil {
		today = *req.Today
	}

	s.logger.Info("GetClientHistory: client=%s, today=%s", req.ClientEmail, today.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetByClientEmail(ctx, req.ClientEmail)
	if err != nil {
		s.logger.Error("GetClientHistory: repository error for client=%s: %v", req.ClientEmail, err)
		return nil, fmt.Errorf("%w: GetClientHistory - repository error: %v", ErrInternal, err)
	}

	upcoming := make([]*domain.Booking, 0)
	past := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if isPast(b, today) {
			past = append(past, b)
		} else {
			upcoming = append(upcoming, b)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Date.After(past[j].Date)
	})

	return &models.ClientHistoryResponse{
		Upcoming: models.FromDomainBookingList(upcoming).Bookings,
		Past:     models.FromDomainBookingList(past).Bookings,
	}, nil
}

// isPast relies on day precision: finished бронирования всегда считаются
// прошедшими независимо от даты
func isPast(b *domain.Booking, today time.Time) bool {
	if b.IsFinished() {
		return true
	}
	return dateOnly(b.Date).Before(dateOnly(today))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UpdateStatus обновляет статус бронирования.
// Переход валидируется по графу жизненного цикла: движение только вперед,
// finished - терминальный статус без исходящих переходов.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.emitStatusNotifications(ctx, updated)

	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}

// emitStatusNotifications эмитит уведомления об изменении статуса.
// Переход в deposit дополнительно считается событием оплаты.
func (s *Service) emitStatusNotifications(ctx context.Context, b *domain.Booking) {
	msg := fmt.Sprintf("Бронь %s обновлена: статус %s", b.ClientName, b.Status)
	if err := s.notifier.Notify(ctx, domain.NotificationBooking, "Статус обновлен", msg); err != nil {
		s.logger.Error("emitStatusNotifications: failed to emit booking notification for id=%d: %v", b.ID, err)
	}

	if b.Status == domain.StatusDeposit {
		payMsg := fmt.Sprintf("%s внес предоплату за %s", b.ClientName, b.CourtName)
		if err := s.notifier.Notify(ctx, domain.NotificationPayment, "Получена предоплата", payMsg); err != nil {
			s.logger.Error("emitStatusNotifications: failed to emit payment notification for id=%d: %v", b.ID, err)
		}
	}
}

// Cancel отменяет бронирование, удаляя его из коллекции.
// Отмена разрешена только в статусе requested.
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return fmt.Errorf("%w: status=%s", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return nil
}

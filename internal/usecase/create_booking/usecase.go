package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/catalog"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	courtCatalog CourtCatalog
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtCatalog CourtCatalog,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtCatalog: courtCatalog,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечения и вставка выполняются атомарно на уровне
// репозитория: инвариант отсутствия двойного бронирования обеспечивается
// в момент вставки, а не только предварительной проверкой доступности.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%s, client=%s, date=%s, time=%s, duration=%d",
		req.CourtID, req.ClientEmail, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт из каталога
	court, err := uc.courtCatalog.GetCourt(req.CourtID)
	if err != nil {
		if errors.Is(err, catalog.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.Available {
		uc.logger.Warn("CreateBooking: court id=%s is not available", req.CourtID)
		return nil, ErrCourtUnavailable
	}

	// 3. Длительность должна входить в набор, разрешенный для типа корта
	if err := validateDurationForCourt(court, req.DurationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: duration validation failed: %v", err)
		return nil, err
	}

	// 4. Время начала должно лежать на канонической сетке слотов
	if err := validateStartOnGrid(req.StartTime, req.DurationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		return nil, err
	}

	// 5. Цена фиксируется в момент создания и больше не пересчитывается
	totalPrice := float64(court.PricePerHour) * float64(req.DurationMinutes) / 60

	booking := &domain.Booking{
		CourtID:         court.ID,
		CourtName:       court.Name,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Date:            dateOnly(req.Date),
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          domain.StatusRequested,
		TotalPrice:      totalPrice,
		CreatedAt:       uc.timeProvider.Now(),
	}

	// 6. Атомарная проверка пересечений + вставка
	created, err := uc.bookingRepo.CreateIfFree(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot not available: court=%s, date=%s, time=%s",
				req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 7. Side-effect: уведомление о новой заявке
	msg := fmt.Sprintf("%s запросил %s на %s", created.ClientName, created.CourtName,
		created.Date.Format(domain.DateFormat))
	if err := uc.notifier.Notify(ctx, domain.NotificationBooking, "Новая заявка", msg); err != nil {
		uc.logger.Error("CreateBooking: failed to emit notification for id=%d: %v", created.ID, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d created", created.ID)

	return &Response{
		ID:              created.ID,
		CourtID:         created.CourtID,
		CourtName:       created.CourtName,
		ClientName:      created.ClientName,
		ClientEmail:     created.ClientEmail,
		ClientPhone:     created.ClientPhone,
		Date:            created.Date,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		TotalPrice:      created.TotalPrice,
		CreatedAt:       created.CreatedAt,
	}, nil
}

// dateOnly обнуляет время, оставляя только календарный день
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/catalog"
	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// UseCase use case для получения сетки слотов с классификацией доступности
type UseCase struct {
	bookingRepo  BookingRepository
	courtCatalog CourtCatalog
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtCatalog CourtCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtCatalog: courtCatalog,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности слотов.
// Результат консультативный: он управляет отрисовкой пикера, а инвариант
// отсутствия пересечений окончательно обеспечивает вставка бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: court=%s, date=%s, duration=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт из каталога
	court, err := uc.courtCatalog.GetCourt(req.CourtID)
	if err != nil {
		if errors.Is(err, catalog.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailability: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Длительность должна входить в набор, разрешенный для типа корта
	if err := validateDurationForCourt(court, req.DurationMinutes); err != nil {
		uc.logger.Warn("GetAvailability: duration validation failed: %v", err)
		return nil, err
	}

	// 4. Генерируем каноническую сетку слотов
	grid, err := generateSlotGrid()
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования корта на дату
	bookings, err := uc.bookingRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Классифицируем каждый слот для выбранной длительности
	occupied := occupiedSlots(grid, bookings)
	slots := classifySlots(grid, occupied, req.DurationMinutes)

	uc.logger.Info("GetAvailability: %d slots classified for court=%s, date=%s",
		len(slots), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID:         req.CourtID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID == "" {
		return fmt.Errorf("%w: court id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientEmail) == "" {
		return fmt.Errorf("%w: client email is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: duration must be a positive multiple of %d minutes",
			ErrInvalidDuration, domain.SlotStepMinutes)
	}

	return nil
}

// validateStartOnGrid проверяет, что время начала лежит на канонической
// сетке слотов и что интервал целиком помещается в нее.
// Последний слот сетки - ClosingTime; интервал, чей последний 30-минутный
// под-слот выходит за ClosingTime, забронировать нельзя.
func validateStartOnGrid(start types.TimeString, durationMinutes int) error {
	startMin, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	openMin, err := domain.OpeningTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	closeMin, err := domain.ClosingTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if startMin < openMin || startMin > closeMin {
		return fmt.Errorf("%w: %s is outside operating hours", ErrInvalidStartTime, start)
	}
	if (startMin-openMin)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: %s is not aligned to the %d-minute grid",
			ErrInvalidStartTime, start, domain.SlotStepMinutes)
	}

	lastSubSlot := startMin + durationMinutes - domain.SlotStepMinutes
	if lastSubSlot > closeMin {
		return fmt.Errorf("%w: interval extends past the end of the grid", ErrInvalidStartTime)
	}

	return nil
}

// validateDurationForCourt проверяет длительность против набора,
// разрешенного для типа корта
func validateDurationForCourt(court *domain.Court, durationMinutes int) error {
	if !court.DurationAllowed(durationMinutes) {
		return fmt.Errorf("%w: %d minutes is not allowed for %s courts",
			ErrInvalidDuration, durationMinutes, court.Type)
	}
	return nil
}

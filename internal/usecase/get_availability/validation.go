package get_availability

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID == "" {
		return fmt.Errorf("%w: court id is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: duration must be a positive multiple of %d minutes",
			ErrInvalidDuration, domain.SlotStepMinutes)
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

package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CourtID         string `json:"courtId"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes"`
	Slots           []Slot `json:"slots"`
}

// Slot модель слота сетки с классификацией доступности
type Slot struct {
	StartTime string `json:"startTime"`
	Status    string `json:"status"` // available | partial | booked
}

// ToUseCaseRequest создает запрос use case из параметров URL и query
func ToUseCaseRequest(courtID, dateStr string, durationMinutes int) (*getAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		CourtID:         courtID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			Status:    string(slot.Status),
		}
	}

	return &AvailabilityResponse{
		CourtID:         resp.CourtID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

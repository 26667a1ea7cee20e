package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID         string `json:"courtId"`
	ClientName      string `json:"clientName"`
	ClientEmail     string `json:"clientEmail"`
	ClientPhone     string `json:"clientPhone"`
	Date            string `json:"date"`      // "2026-01-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	CourtID         string  `json:"courtId"`
	CourtName       string  `json:"courtName"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TotalPrice      float64 `json:"totalPrice"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CourtID:         r.CourtID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CourtID:         resp.CourtID,
		CourtName:       resp.CourtName,
		ClientName:      resp.ClientName,
		ClientEmail:     resp.ClientEmail,
		ClientPhone:     resp.ClientPhone,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TotalPrice:      resp.TotalPrice,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

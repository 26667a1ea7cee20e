package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ClientHistoryRequest запрос истории бронирований клиента
type ClientHistoryRequest struct {
	ClientEmail string     `json:"clientEmail"`
	Today       *time.Time `json:"today,omitempty"` // nil = текущая дата сервера
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	CourtID         string  `json:"courtId"`
	CourtName       string  `json:"courtName"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	Date            string  `json:"date"`      // "2026-01-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TotalPrice      float64 `json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ClientHistoryResponse история клиента, разделенная на предстоящие и прошедшие
type ClientHistoryResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		CourtID:         b.CourtID,
		CourtName:       b.CourtName,
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ClientPhone:     b.ClientPhone,
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		TotalPrice:      b.TotalPrice,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusRequested BookingStatus = "requested"
	StatusDeposit   BookingStatus = "deposit"
	StatusConfirmed BookingStatus = "confirmed"
	StatusFinished  BookingStatus = "finished"
)

// statusTransitions фиксированный граф переходов статусов.
// Движение только вперед: requested -> deposit -> confirmed -> finished,
// с допустимым коротким путем requested -> confirmed (минуя deposit).
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusRequested: {StatusDeposit, StatusConfirmed},
	StatusDeposit:   {StatusConfirmed},
	StatusConfirmed: {StatusFinished},
	StatusFinished:  {},
}

// Booking represents a court reservation in the system
type Booking struct {
	ID              int64
	CourtID         string
	CourtName       string // denormalized for history and notifications
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Date            time.Time // calendar day, no time component
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// TotalPrice is computed as pricePerHour * duration / 60 at creation
	// time and never recomputed afterwards.
	TotalPrice float64

	CreatedAt time.Time
}

// IsFinished returns true if the booking reached its terminal status
func (b *Booking) IsFinished() bool {
	return b.Status == StatusFinished
}

// BlocksSlots returns true if the booking occupies its time interval for
// availability purposes. Finished bookings release their slots.
func (b *Booking) BlocksSlots() bool {
	return b.Status != StatusFinished
}

// CanBeCancelled returns true if the booking can still be removed by the client
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusRequested
}

// CanTransitionTo reports whether the status graph permits moving to next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, s := range statusTransitions[b.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether s is one of the known status values
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusRequested, StatusDeposit, StatusConfirmed, StatusFinished:
		return true
	default:
		return false
	}
}

// AllStatuses перечисляет статусы в порядке жизненного цикла
var AllStatuses = []BookingStatus{
	StatusRequested,
	StatusDeposit,
	StatusConfirmed,
	StatusFinished,
}

package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда интервал пересекается с активным
	// бронированием того же корта на ту же дату
	ErrSlotTaken = errors.New("booking.repository: slot already taken")
)

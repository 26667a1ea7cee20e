package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в каталоге
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtUnavailable возвращается, когда корт закрыт для бронирования
	ErrCourtUnavailable = errors.New("create_booking: court is not available")

	// ErrInvalidDuration возвращается, когда длительность не входит
	// в разрешенный набор для типа корта
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrInvalidStartTime возвращается, когда время начала не попадает
	// в каноническую сетку слотов или интервал выходит за конец сетки
	ErrInvalidStartTime = errors.New("create_booking: start time is not on the slot grid")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается
	// с активным бронированием того же корта на ту же дату
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при неизвестном значении статуса
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается, когда переход статуса
	// не разрешен графом жизненного цикла
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrCannotCancel возвращается при попытке отменить бронирование
	// не в статусе requested
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

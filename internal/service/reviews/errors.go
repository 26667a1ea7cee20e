package reviews

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в каталоге
	ErrCourtNotFound = errors.New("court not found")

	// ErrEmptyComment возвращается, когда комментарий пуст после trim
	ErrEmptyComment = errors.New("review comment must not be empty")

	// ErrInvalidRating возвращается, когда оценка вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package get_availability

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в каталоге
	ErrCourtNotFound = errors.New("get_availability: court not found")

	// ErrInvalidDuration возвращается, когда длительность не входит
	// в разрешенный набор для типа корта
	ErrInvalidDuration = errors.New("get_availability: invalid duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)

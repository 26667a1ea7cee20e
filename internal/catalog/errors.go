package catalog

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в каталоге
	ErrCourtNotFound = errors.New("catalog: court not found")
)

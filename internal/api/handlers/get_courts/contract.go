package get_courts

import "github.com/m04kA/SMC-CourtService/internal/domain"

type CourtCatalog interface {
	ListCourts() []domain.Court
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

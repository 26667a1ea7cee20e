package get_client_bookings

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/bookings/models"
)

type BookingService interface {
	GetClientHistory(ctx context.Context, req *models.ClientHistoryRequest) (*models.ClientHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

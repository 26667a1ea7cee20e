package get_court_reviews

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/reviews/models"
)

type ReviewService interface {
	GetCourtReviews(ctx context.Context, courtID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

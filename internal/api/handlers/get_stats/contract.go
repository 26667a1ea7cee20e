package get_stats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/service/stats/models"
)

type StatsService interface {
	Collect(ctx context.Context, today *time.Time) (*models.DashboardStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

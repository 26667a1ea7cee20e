package get_stats

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/domain"
)

const msgInvalidToday = "некорректный формат параметра today, ожидается YYYY-MM-DD"

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats
// Query params: today (optional, YYYY-MM-DD) - опорная дата для счетчика
// бронирований на сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var today *time.Time
	if todayStr := r.URL.Query().Get("today"); todayStr != "" {
		parsed, err := time.Parse(domain.DateFormat, todayStr)
		if err != nil {
			h.logger.Warn("GET /stats - Invalid today param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToday)
			return
		}
		today = &parsed
	}

	result, err := h.service.Collect(r.Context(), today)
	if err != nil {
		h.logger.Error("GET /stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats - Stats collected successfully: total_bookings=%d, total_reviews=%d",
		result.TotalBookings, result.TotalReviews)
	handlers.RespondJSON(w, http.StatusOK, result)
}

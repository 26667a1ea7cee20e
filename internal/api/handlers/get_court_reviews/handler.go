package get_court_reviews

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/reviews"
)

const msgCourtNotFound = "корт не найден"

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID := vars["courtId"]

	result, err := h.service.GetCourtReviews(r.Context(), courtID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/reviews - Court not found: court_id=%s", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("GET /courts/{id}/reviews - Failed to get reviews: court_id=%s, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/reviews - Reviews retrieved successfully: court_id=%s, count=%d",
		courtID, len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}

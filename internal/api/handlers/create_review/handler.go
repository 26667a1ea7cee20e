package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/reviews"
	"github.com/m04kA/SMC-CourtService/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCourtNotFound      = "корт не найден"
	msgEmptyComment       = "текст отзыва не может быть пустым"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgInvalidInput       = "некорректные данные отзыва"
)

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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrCourtNotFound):
			h.logger.Warn("POST /reviews - Court not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, reviews.ErrEmptyComment):
			h.logger.Warn("POST /reviews - Empty comment: court_id=%s", req.CourtID)
			handlers.RespondBadRequest(w, msgEmptyComment)

		case errors.Is(err, reviews.ErrInvalidRating):
			h.logger.Warn("POST /reviews - Invalid rating: court_id=%s, rating=%d", req.CourtID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reviews - Failed to create review: court_id=%s, error=%v",
				req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created successfully: review_id=%d, court_id=%s, rating=%d",
		result.ID, req.CourtID, req.Rating)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package get_client_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/bookings"
	"github.com/m04kA/SMC-CourtService/internal/service/bookings/models"
)

const (
	msgMissingEmail = "email клиента обязателен"
	msgInvalidToday = "некорректный формат параметра today, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{email}/bookings
// Query params: today (optional, YYYY-MM-DD) - опорная дата для деления
// истории на предстоящие и прошедшие
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]
	if email == "" {
		h.logger.Warn("GET /clients/{email}/bookings - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	req := &models.ClientHistoryRequest{ClientEmail: email}

	if todayStr := r.URL.Query().Get("today"); todayStr != "" {
		today, err := time.Parse(domain.DateFormat, todayStr)
		if err != nil {
			h.logger.Warn("GET /clients/{email}/bookings - Invalid today param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToday)
			return
		}
		req.Today = &today
	}

	history, err := h.service.GetClientHistory(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{email}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("GET /clients/{email}/bookings - Failed to get history: client=%s, error=%v",
				email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{email}/bookings - History retrieved successfully: client=%s, upcoming=%d, past=%d",
		email, len(history.Upcoming), len(history.Past))
	handlers.RespondJSON(w, http.StatusOK, history)
}

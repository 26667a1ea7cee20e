package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность"
	msgCourtNotFound   = "корт не найден"
)

// Длительность по умолчанию, когда клиент не передал duration
const defaultDurationMinutes = 2 * domain.SlotStepMinutes

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability
// Query params: date (required, YYYY-MM-DD), duration (minutes, optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID := vars["courtId"]

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{id}/availability - Missing date: court_id=%s", courtID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем duration из query параметров
	durationMinutes := defaultDurationMinutes
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		parsed, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /courts/{id}/availability - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		durationMinutes = parsed
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(courtID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailability.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/availability - Court not found: court_id=%s", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailability.ErrInvalidDuration):
			h.logger.Warn("GET /courts/{id}/availability - Invalid duration: court_id=%s, duration=%d",
				courtID, durationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /courts/{id}/availability - Failed to get availability: court_id=%s, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /courts/{id}/availability - Slots retrieved successfully: court_id=%s, date=%s, slots_count=%d",
		courtID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgCourtNotFound      = "корт не найден"
	msgCourtUnavailable   = "корт временно недоступен для бронирования"
	msgInvalidDuration    = "недопустимая длительность для этого типа корта"
	msgInvalidStartTime   = "время начала не попадает в сетку слотов"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: court_id=%s, date=%s, start=%s",
				req.CourtID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCourtUnavailable):
			h.logger.Warn("POST /bookings - Court unavailable: court_id=%s", req.CourtID)
			handlers.RespondBadRequest(w, msgCourtUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: court_id=%s, duration=%d",
				req.CourtID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidStartTime):
			h.logger.Warn("POST /bookings - Invalid start time: court_id=%s, start=%s",
				req.CourtID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%s, error=%v",
				req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, court_id=%s, client=%s",
		result.ID, req.CourtID, req.ClientEmail)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

package mark_notification_read

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
)

const msgInvalidNotificationID = "некорректный ID уведомления"

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/notifications/{notificationId}/read
// Пометка несуществующего уведомления не является ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем notificationId из URL
	vars := mux.Vars(r)
	notificationIDStr := vars["notificationId"]

	notificationID, err := strconv.ParseInt(notificationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /notifications/{id}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkRead(r.Context(), notificationID); err != nil {
		h.logger.Error("PATCH /notifications/{id}/read - Failed to mark as read: notification_id=%d, error=%v",
			notificationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /notifications/{id}/read - Notification marked as read: notification_id=%d",
		notificationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

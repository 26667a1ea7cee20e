package mark_all_notifications_read

import (
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
)

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

// Handle POST /api/v1/notifications/read-all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context()); err != nil {
		h.logger.Error("POST /notifications/read-all - Failed to mark all as read: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /notifications/read-all - All notifications marked as read")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

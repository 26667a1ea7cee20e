package get_courts

import (
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
)

type Handler struct {
	catalog CourtCatalog
	logger  Logger
}

func NewHandler(catalog CourtCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courts := h.catalog.ListCourts()
	response := FromDomainCourts(courts)

	h.logger.Info("GET /courts - Courts retrieved successfully: count=%d", len(courts))
	handlers.RespondJSON(w, http.StatusOK, response)
}

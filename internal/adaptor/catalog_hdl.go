package adaptor

import (
	"net/http"

	"sportello-booking/internal/usecase"
	"sportello-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// List handles GET /api/services (public)
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")

	services := h.service.ListServices(locale)

	utils.ResponseSuccess(w, "success", services)
}

package wire

import (
	"sportello-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/services - List bookable services and their options (public)
	r.Get("/api/services", catalogHandler.List)
}

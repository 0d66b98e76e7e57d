package adaptor

import (
	"sportello-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Flow    *FlowHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Flow:    NewFlowHandler(service.Flow, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

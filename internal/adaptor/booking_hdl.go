package adaptor

import (
	"net/http"
	"strings"

	"sportello-booking/internal/usecase"
	"sportello-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetByRef handles GET /api/bookings/{ref} (public, feeds the confirmation page)
func (h *BookingHandler) GetByRef(w http.ResponseWriter, r *http.Request) {
	bookingRef := chi.URLParam(r, "ref")
	if bookingRef == "" {
		utils.ResponseBadRequest(w, "Booking ref is required", nil)
		return
	}

	booking, err := h.service.GetByRef(r.Context(), bookingRef)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ref")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListRecent handles GET /api/admin/bookings (admin token required)
func (h *BookingHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 20)

	bookings, err := h.service.ListRecent(r.Context(), perPage, (page-1)*perPage)
	if err != nil {
		h.handleServiceError(w, err, "list recent bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"sportello-booking/internal/dto/request"
	"sportello-booking/internal/usecase"
	"sportello-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlowHandler struct {
	service usecase.FlowService
	log     *zap.Logger
}

func NewFlowHandler(service usecase.FlowService, log *zap.Logger) *FlowHandler {
	return &FlowHandler{
		service: service,
		log:     log.With(zap.String("handler", "flow")),
	}
}

// Start handles POST /api/flows
func (h *FlowHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flow, err := h.service.StartFlow(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "start flow")
		return
	}

	utils.ResponseCreated(w, "success", flow)
}

// Get handles GET /api/flows/{id}
func (h *FlowHandler) Get(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "id")
	if flowID == "" {
		utils.ResponseBadRequest(w, "Flow ID is required", nil)
		return
	}

	flow, err := h.service.GetFlow(r.Context(), flowID)
	if err != nil {
		h.handleServiceError(w, err, "get flow")
		return
	}

	utils.ResponseSuccess(w, "success", flow)
}

// SubmitIntake handles POST /api/flows/{id}/intake
//
// Intake-rule failures and provider errors come back as 200 with the error
// inside the flow view: they are form state, not transport failures.
func (h *FlowHandler) SubmitIntake(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "id")
	if flowID == "" {
		utils.ResponseBadRequest(w, "Flow ID is required", nil)
		return
	}

	var req request.SubmitIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flow, err := h.service.SubmitIntake(r.Context(), flowID, &req)
	if err != nil {
		h.handleServiceError(w, err, "submit intake")
		return
	}

	utils.ResponseSuccess(w, "success", flow)
}

// Back handles POST /api/flows/{id}/back
func (h *FlowHandler) Back(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "id")
	if flowID == "" {
		utils.ResponseBadRequest(w, "Flow ID is required", nil)
		return
	}

	flow, err := h.service.EditDetails(r.Context(), flowID)
	if err != nil {
		h.handleServiceError(w, err, "edit details")
		return
	}

	utils.ResponseSuccess(w, "success", flow)
}

// Pay handles POST /api/flows/{id}/pay
func (h *FlowHandler) Pay(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "id")
	if flowID == "" {
		utils.ResponseBadRequest(w, "Flow ID is required", nil)
		return
	}

	var req request.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flow, err := h.service.ConfirmPayment(r.Context(), flowID, &req)
	if err != nil {
		h.handleServiceError(w, err, "confirm payment")
		return
	}

	utils.ResponseSuccess(w, "success", flow)
}

// Abandon handles POST /api/flows/{id}/abandon
func (h *FlowHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "id")
	if flowID == "" {
		utils.ResponseBadRequest(w, "Flow ID is required", nil)
		return
	}

	if err := h.service.Abandon(r.Context(), flowID); err != nil {
		h.handleServiceError(w, err, "abandon flow")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Return handles GET /booking/return — the provider's redirect target after
// confirmation or an authentication step.
func (h *FlowHandler) Return(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	bookingRef := query.Get("booking_ref")
	redirectStatus := query.Get("redirect_status")

	target, err := h.service.CompleteFromReturn(r.Context(), bookingRef, redirectStatus)
	if err != nil {
		h.handleServiceError(w, err, "complete from return")
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleServiceError maps flow service errors to HTTP statuses
func (h *FlowHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already in progress"):
		h.log.Warn(operation+" failed - request in flight",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"sportello-booking/internal/catalog"
	"sportello-booking/internal/data/entity"
	"sportello-booking/internal/data/repository"
	"sportello-booking/internal/dto/request"
	"sportello-booking/internal/dto/response"
	"sportello-booking/internal/i18n"
	"sportello-booking/internal/intake"
	"sportello-booking/pkg/leadlog"
	"sportello-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// redirectStatusSucceeded is the success marker the provider appends to the
// return URL.
const redirectStatusSucceeded = "succeeded"

type FlowService interface {
	StartFlow(ctx context.Context, req *request.StartFlowRequest) (*response.FlowResponse, error)
	GetFlow(ctx context.Context, flowID string) (*response.FlowResponse, error)

	// SubmitIntake validates the draft, mirrors it to the lead log
	// (best effort) and requests a payment session. Validation and provider
	// failures come back inside the flow view, not as errors: they are part
	// of the flow state the form renders.
	SubmitIntake(ctx context.Context, flowID string, req *request.SubmitIntakeRequest) (*response.FlowResponse, error)

	// EditDetails is the single backward transition: payment_pending back to
	// intake, keeping every entered field.
	EditDetails(ctx context.Context, flowID string) (*response.FlowResponse, error)

	ConfirmPayment(ctx context.Context, flowID string, req *request.ConfirmPaymentRequest) (*response.FlowResponse, error)
	Abandon(ctx context.Context, flowID string) error

	// CompleteFromReturn handles the provider's redirect back to the site and
	// returns the confirmation page path to send the browser to.
	CompleteFromReturn(ctx context.Context, bookingRef, redirectStatus string) (string, error)

	Close()
}

type flowService struct {
	store     *flowStore
	repo      repository.BookingRepository
	initiator SessionInitiator
	collector Collector
	notifier  leadlog.Notifier

	baseURL       string
	defaultLocale string

	log *zap.Logger
}

func NewFlowService(
	repo repository.BookingRepository,
	initiator SessionInitiator,
	collector Collector,
	notifier leadlog.Notifier,
	config *utils.Config,
	log *zap.Logger,
) FlowService {
	ttl := time.Duration(config.Booking.FlowTTLMinutes) * time.Minute

	return &flowService{
		store:         newFlowStore(ttl),
		repo:          repo,
		initiator:     initiator,
		collector:     collector,
		notifier:      notifier,
		baseURL:       config.App.PublicBaseURL,
		defaultLocale: i18n.Normalize(config.Booking.DefaultLocale),
		log:           log.With(zap.String("service", "flow")),
	}
}

func (s *flowService) Close() {
	s.store.Close()
}

func (s *flowService) StartFlow(ctx context.Context, req *request.StartFlowRequest) (*response.FlowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Start flow validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, ok := catalog.FindService(req.ServiceID); !ok {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	locale := s.defaultLocale
	if req.Locale != "" {
		locale = i18n.Normalize(req.Locale)
	}

	now := time.Now()
	f := &flow{
		id:         uuid.New().String(),
		bookingRef: utils.GenerateBookingRef(),
		serviceID:  req.ServiceID,
		locale:     locale,
		state:      stateIntake,
		createdAt:  now,
		lastActive: now,
	}
	f.intake.Locale = locale

	s.store.Put(f)

	s.log.Info("Flow started",
		zap.String("flow_id", f.id),
		zap.String("booking_ref", f.bookingRef),
		zap.String("service_id", f.serviceID),
		zap.String("locale", f.locale),
	)

	f.mu.Lock()
	defer f.mu.Unlock()
	return s.view(f), nil
}

func (s *flowService) GetFlow(ctx context.Context, flowID string) (*response.FlowResponse, error) {
	f, ok := s.store.Get(flowID)
	if !ok {
		return nil, fmt.Errorf("flow %s not found", flowID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return s.view(f), nil
}

func (s *flowService) SubmitIntake(ctx context.Context, flowID string, req *request.SubmitIntakeRequest) (*response.FlowResponse, error) {
	f, ok := s.store.Get(flowID)
	if !ok {
		return nil, fmt.Errorf("flow %s not found", flowID)
	}

	f.mu.Lock()

	if f.state != stateIntake {
		defer f.mu.Unlock()
		return nil, fmt.Errorf("cannot submit intake in state %s", f.state)
	}
	if f.submitInFlight {
		defer f.mu.Unlock()
		return nil, fmt.Errorf("a submission for flow %s is already in progress", flowID)
	}

	// Keep everything the user typed, valid or not, so a failed attempt
	// never forces retyping.
	f.intake = entity.IntakeDraft{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		OptionID: req.OptionID,
		Details:  req.Details,
		Consents: entity.ConsentFlags{
			StartNow:     req.Consents.StartNow,
			RefundPolicy: req.Consents.RefundPolicy,
			Privacy:      req.Consents.Privacy,
		},
		Locale: f.locale,
	}

	// New attempt supersedes whatever was shown before.
	f.lastError = ""

	if msg := intake.Validate(&f.intake); msg != "" {
		f.lastError = msg
		view := s.view(f)
		f.mu.Unlock()
		return view, nil
	}

	opt, _ := catalog.FindOption(f.intake.OptionID)
	if opt.ServiceID != f.serviceID {
		f.lastError = i18n.T(f.locale, i18n.MsgOptionRequired)
		view := s.view(f)
		f.mu.Unlock()
		return view, nil
	}

	f.submitInFlight = true

	sreq := SessionRequest{
		BookingRef:  f.bookingRef,
		ServiceID:   f.serviceID,
		OptionID:    opt.ID,
		AmountPence: opt.AmountPence,
		Currency:    opt.Currency,
		Name:        strings.TrimSpace(f.intake.Name),
		Email:       strings.TrimSpace(f.intake.Email),
		Description: fmt.Sprintf("%s — %s", f.serviceID, opt.Label(i18n.LocaleEN)),
		Locale:      f.locale,
	}
	entry := leadlog.Entry{
		Action:     "booking_intake",
		BookingRef: f.bookingRef,
		ServiceID:  f.serviceID,
		Name:       strings.TrimSpace(f.intake.Name),
		Email:      strings.TrimSpace(f.intake.Email),
		Phone:      strings.TrimSpace(f.intake.Phone),
		Locale:     f.locale,
		Data: map[string]any{
			"option":       opt.ID,
			"amount_label": opt.AmountLabel(),
			"details":      f.intake.Details,
			"consents":     f.intake.Consents,
		},
	}

	f.mu.Unlock()

	// Best effort, off the critical path: the payment must proceed even if
	// the lead log is unreachable. Background context because the entry may
	// outlive this request.
	go s.notifier.Notify(context.Background(), entry)

	result, err := s.initiator.CreateSession(ctx, sreq)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitInFlight = false

	if err != nil {
		f.lastError = err.Error()
		s.log.Warn("Payment session initiation failed",
			zap.Error(err),
			zap.String("booking_ref", f.bookingRef),
		)
		return s.view(f), nil
	}

	f.clientSecret = result.ClientSecret
	f.paymentIntentID = result.PaymentIntentID
	f.state = statePaymentPending

	s.log.Info("Payment session created",
		zap.String("booking_ref", f.bookingRef),
		zap.String("option", opt.ID),
		zap.Int64("amount_pence", opt.AmountPence),
	)

	s.persistAwaitingPayment(ctx, f, opt)

	return s.view(f), nil
}

func (s *flowService) EditDetails(ctx context.Context, flowID string) (*response.FlowResponse, error) {
	f, ok := s.store.Get(flowID)
	if !ok {
		return nil, fmt.Errorf("flow %s not found", flowID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != statePaymentPending {
		return nil, fmt.Errorf("cannot edit details in state %s", f.state)
	}

	// Only the session and the payment-step error go; the intake draft stays
	// so nothing has to be retyped.
	f.state = stateIntake
	f.clientSecret = ""
	f.paymentIntentID = ""
	f.lastError = ""

	s.log.Info("Flow returned to intake",
		zap.String("flow_id", f.id),
		zap.String("booking_ref", f.bookingRef),
	)

	return s.view(f), nil
}

func (s *flowService) ConfirmPayment(ctx context.Context, flowID string, req *request.ConfirmPaymentRequest) (*response.FlowResponse, error) {
	f, ok := s.store.Get(flowID)
	if !ok {
		return nil, fmt.Errorf("flow %s not found", flowID)
	}

	f.mu.Lock()

	if f.state != statePaymentPending {
		defer f.mu.Unlock()
		return nil, fmt.Errorf("cannot pay in state %s", f.state)
	}
	if f.payInFlight {
		defer f.mu.Unlock()
		return nil, fmt.Errorf("a payment for flow %s is already in progress", flowID)
	}

	f.lastError = ""

	// Local check before any provider round-trip.
	if strings.TrimSpace(req.PaymentMethodID) == "" {
		f.lastError = i18n.T(f.locale, i18n.MsgPaymentDetails)
		view := s.view(f)
		f.mu.Unlock()
		return view, nil
	}

	f.payInFlight = true

	returnURL := buildReturnURL(s.baseURL, f.bookingRef)
	creq := ConfirmRequest{
		PaymentIntentID: f.paymentIntentID,
		PaymentMethodID: req.PaymentMethodID,
		ReturnURL:       returnURL,
		Locale:          f.locale,
	}

	f.mu.Unlock()

	result, err := s.collector.ConfirmPayment(ctx, creq)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.payInFlight = false

	if err != nil {
		f.lastError = err.Error()
		s.log.Warn("Payment confirmation failed",
			zap.Error(err),
			zap.String("booking_ref", f.bookingRef),
		)
		return s.view(f), nil
	}

	view := s.view(f)
	if result.NextActionURL != "" {
		// The provider needs an authentication step; it will come back to
		// the return URL when done.
		view.RedirectURL = result.NextActionURL
		return view, nil
	}
	if result.Succeeded {
		// Completion happens at the return target, same path as a redirect
		// method: the flow itself never declares success.
		view.RedirectURL = withRedirectStatus(returnURL, redirectStatusSucceeded)
	}

	return view, nil
}

func (s *flowService) Abandon(ctx context.Context, flowID string) error {
	f, ok := s.store.Get(flowID)
	if !ok {
		return fmt.Errorf("flow %s not found", flowID)
	}

	f.mu.Lock()
	if f.state == stateCompleted {
		f.mu.Unlock()
		return fmt.Errorf("cannot abandon a completed booking")
	}
	wasPending := f.state == statePaymentPending
	f.state = stateAbandoned
	bookingRef := f.bookingRef
	f.mu.Unlock()

	s.store.Remove(flowID)

	if wasPending {
		if err := s.repo.UpdateStatusByRef(ctx, bookingRef, entity.BookingStatusAbandoned); err != nil {
			s.log.Warn("Failed to mark booking abandoned",
				zap.Error(err),
				zap.String("booking_ref", bookingRef),
			)
		}
	}

	s.log.Info("Flow abandoned",
		zap.String("flow_id", flowID),
		zap.String("booking_ref", bookingRef),
	)

	return nil
}

func (s *flowService) CompleteFromReturn(ctx context.Context, bookingRef, redirectStatus string) (string, error) {
	if bookingRef == "" {
		return "", fmt.Errorf("invalid return: booking ref is required")
	}

	succeeded := redirectStatus == redirectStatusSucceeded
	locale := s.defaultLocale

	if f, ok := s.store.GetByRef(bookingRef); ok {
		f.mu.Lock()
		locale = f.locale
		if succeeded {
			f.state = stateCompleted
			f.clientSecret = ""
			f.lastError = ""
		} else {
			// Same session, same flow: the user can retry from the payment
			// step.
			f.lastError = i18n.T(f.locale, i18n.MsgPaymentFailed)
		}
		f.mu.Unlock()
	} else if booking, err := s.repo.FindByRef(ctx, bookingRef); err == nil && booking != nil {
		// Flow already expired (tab closed, delayed-notification method);
		// the persisted record still tells us the locale.
		locale = i18n.Normalize(booking.Locale)
	}

	if succeeded {
		if err := s.repo.UpdateStatusByRef(ctx, bookingRef, entity.BookingStatusCompleted); err != nil {
			s.log.Error("Failed to mark booking completed",
				zap.Error(err),
				zap.String("booking_ref", bookingRef),
			)
		} else {
			s.log.Info("Booking completed", zap.String("booking_ref", bookingRef))
		}
	} else {
		s.log.Warn("Payment returned without success marker",
			zap.String("booking_ref", bookingRef),
			zap.String("redirect_status", redirectStatus),
		)
	}

	return confirmationPath(locale, bookingRef, redirectStatus), nil
}

// persistAwaitingPayment records the initiated booking. The payment flow does
// not depend on it: on failure we log and continue.
func (s *flowService) persistAwaitingPayment(ctx context.Context, f *flow, opt catalog.Option) {
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingRef:      f.bookingRef,
		ServiceID:       f.serviceID,
		OptionID:        opt.ID,
		AmountPence:     opt.AmountPence,
		Currency:        opt.Currency,
		Name:            strings.TrimSpace(f.intake.Name),
		Email:           strings.TrimSpace(f.intake.Email),
		Phone:           strings.TrimSpace(f.intake.Phone),
		Details:         f.intake.Details,
		Locale:          f.locale,
		PaymentIntentID: f.paymentIntentID,
		Status:          entity.BookingStatusAwaitingPayment,
	}

	if err := s.repo.Upsert(ctx, booking); err != nil {
		s.log.Error("Failed to persist booking record",
			zap.Error(err),
			zap.String("booking_ref", f.bookingRef),
		)
		// Continue anyway
	}
}

// view renders the flow for the client. Caller must hold f.mu.
func (s *flowService) view(f *flow) *response.FlowResponse {
	resp := &response.FlowResponse{
		ID:         f.id,
		BookingRef: f.bookingRef,
		ServiceID:  f.serviceID,
		State:      string(f.state),
		Locale:     f.locale,
		Intake: response.IntakeResponse{
			Name:     f.intake.Name,
			Email:    f.intake.Email,
			Phone:    f.intake.Phone,
			OptionID: f.intake.OptionID,
			Details:  f.intake.Details,
			Consents: response.ConsentsResponse{
				StartNow:     f.intake.Consents.StartNow,
				RefundPolicy: f.intake.Consents.RefundPolicy,
				Privacy:      f.intake.Consents.Privacy,
			},
		},
		Error: f.lastError,
	}

	if opt, ok := catalog.FindOption(f.intake.OptionID); ok {
		resp.AmountLabel = opt.AmountLabel()
	}
	if f.state == statePaymentPending {
		resp.ClientSecret = f.clientSecret
	}

	return resp
}

// buildReturnURL is the redirect target handed to the provider. It must embed
// the booking ref every time so the landing page can correlate the payment
// with the intake record.
func buildReturnURL(baseURL, bookingRef string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" {
		u = &url.URL{Scheme: "https", Host: "localhost"}
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/booking/return"
	q := u.Query()
	q.Set("booking_ref", bookingRef)
	u.RawQuery = q.Encode()

	return u.String()
}

func withRedirectStatus(returnURL, status string) string {
	u, err := url.Parse(returnURL)
	if err != nil {
		return returnURL
	}

	q := u.Query()
	q.Set("redirect_status", status)
	u.RawQuery = q.Encode()

	return u.String()
}

// confirmationPath is where the return handler sends the browser. Italian
// visitors land on the /it prefix, matching the site's path-based locales.
func confirmationPath(locale, bookingRef, redirectStatus string) string {
	prefix := ""
	if i18n.Normalize(locale) == i18n.LocaleIT {
		prefix = "/it"
	}

	q := url.Values{}
	q.Set("ref", bookingRef)
	q.Set("status", redirectStatus)

	return fmt.Sprintf("%s/booking/confirmation?%s", prefix, q.Encode())
}

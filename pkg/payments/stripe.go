// Package payments implements the payment-provider boundary with Stripe
// PaymentIntents. stripe.Key is assigned once in main after config
// validation.
package payments

import (
	"context"
	"errors"
	"fmt"

	"sportello-booking/internal/i18n"
	"sportello-booking/internal/usecase"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeInitiator creates one PaymentIntent per (booking ref, option) and
// hands back its client secret.
type StripeInitiator struct {
	log *zap.Logger
}

func NewStripeInitiator(log *zap.Logger) *StripeInitiator {
	return &StripeInitiator{
		log: log.With(zap.String("service", "stripe")),
	}
}

func (p *StripeInitiator) CreateSession(ctx context.Context, req usecase.SessionRequest) (*usecase.SessionResult, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(req.AmountPence),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	params.AddMetadata("booking_ref", req.BookingRef)
	params.AddMetadata("service_id", req.ServiceID)
	params.AddMetadata("option_id", req.OptionID)
	params.AddMetadata("locale", req.Locale)

	intent, err := paymentintent.New(params)
	if err != nil {
		p.log.Warn("PaymentIntent creation failed",
			zap.Error(err),
			zap.String("booking_ref", req.BookingRef),
			zap.String("option_id", req.OptionID),
		)
		return nil, userFacing(err, req.Locale, i18n.MsgSessionFailed)
	}

	return &usecase.SessionResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// StripeCollector confirms a PaymentIntent, passing the return URL the
// provider redirects to after any authentication step.
type StripeCollector struct {
	log *zap.Logger
}

func NewStripeCollector(log *zap.Logger) *StripeCollector {
	return &StripeCollector{
		log: log.With(zap.String("service", "stripe")),
	}
}

func (p *StripeCollector) ConfirmPayment(ctx context.Context, req usecase.ConfirmRequest) (*usecase.ConfirmResult, error) {
	params := &stripe.PaymentIntentConfirmParams{
		Params: stripe.Params{
			Context: ctx,
		},
		PaymentMethod: stripe.String(req.PaymentMethodID),
		ReturnURL:     stripe.String(req.ReturnURL),
	}

	intent, err := paymentintent.Confirm(req.PaymentIntentID, params)
	if err != nil {
		p.log.Warn("PaymentIntent confirmation failed",
			zap.Error(err),
			zap.String("payment_intent_id", req.PaymentIntentID),
		)
		return nil, userFacing(err, req.Locale, i18n.MsgPaymentFailed)
	}

	result := &usecase.ConfirmResult{
		Succeeded: intent.Status == stripe.PaymentIntentStatusSucceeded ||
			intent.Status == stripe.PaymentIntentStatusProcessing,
	}

	if intent.Status == stripe.PaymentIntentStatusRequiresAction &&
		intent.NextAction != nil && intent.NextAction.RedirectToURL != nil {
		result.NextActionURL = intent.NextAction.RedirectToURL.URL
	}

	return result, nil
}

// userFacing turns a provider error into the message shown in the flow's
// error slot: Stripe's own message verbatim when it has one, otherwise the
// generic retryable one.
func userFacing(err error, locale, fallbackKey string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return fmt.Errorf("%s", stripeErr.Msg)
	}
	return errors.New(i18n.T(locale, fallbackKey))
}

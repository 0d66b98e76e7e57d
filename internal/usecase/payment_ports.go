package usecase

import "context"

// SessionRequest asks the payment provider for a new payment session. The
// amount comes from the catalog option, never from the client.
type SessionRequest struct {
	BookingRef  string
	ServiceID   string
	OptionID    string
	AmountPence int64
	Currency    string
	Name        string
	Email       string
	Description string
	Locale      string
}

type SessionResult struct {
	ClientSecret    string
	PaymentIntentID string
}

// SessionInitiator creates a payment session with the provider. Errors carry
// a user-presentable message: the provider's own business message verbatim
// when there is one, otherwise a generic retryable one.
type SessionInitiator interface {
	CreateSession(ctx context.Context, req SessionRequest) (*SessionResult, error)
}

// ConfirmRequest submits a payment for confirmation. ReturnURL always embeds
// the booking ref so the landing page can correlate the completed payment
// with the intake record.
type ConfirmRequest struct {
	PaymentIntentID string
	PaymentMethodID string
	ReturnURL       string
	Locale          string
}

type ConfirmResult struct {
	Succeeded bool
	// NextActionURL is set when the provider requires a redirect step
	// (3-D Secure or a delayed-notification method).
	NextActionURL string
}

type Collector interface {
	ConfirmPayment(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error)
}

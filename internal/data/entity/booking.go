package entity

type BookingStatus string

const (
	BookingStatusAwaitingPayment BookingStatus = "awaiting_payment"
	BookingStatusCompleted       BookingStatus = "completed"
	BookingStatusFailed          BookingStatus = "failed"
	BookingStatusAbandoned       BookingStatus = "abandoned"
)

// Booking is the persisted record of a flow that reached payment-session
// initiation. Amounts are in minor units (pence) because that is what the
// payment provider takes.
type Booking struct {
	Base
	BookingRef      string        `db:"booking_ref"`
	ServiceID       string        `db:"service_id"`
	OptionID        string        `db:"option_id"`
	AmountPence     int64         `db:"amount_pence"`
	Currency        string        `db:"currency"`
	Name            string        `db:"name"`
	Email           string        `db:"email"`
	Phone           string        `db:"phone"`
	Details         string        `db:"details"`
	Locale          string        `db:"locale"`
	PaymentIntentID string        `db:"payment_intent_id"`
	Status          BookingStatus `db:"status"`
}

package entity

// ConsentFlags are the three acknowledgements a customer must tick before a
// booking can proceed to payment.
type ConsentFlags struct {
	StartNow     bool `json:"start_now"`
	RefundPolicy bool `json:"refund_policy"`
	Privacy      bool `json:"privacy"`
}

// IntakeDraft is the in-progress booking form state. It lives only in memory
// for the lifetime of a flow and is never persisted as-is.
type IntakeDraft struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	OptionID string       `json:"option_id"`
	Details  string       `json:"details"`
	Consents ConsentFlags `json:"consents"`
	Locale   string       `json:"locale"`
}

func (c ConsentFlags) All() bool {
	return c.StartNow && c.RefundPolicy && c.Privacy
}

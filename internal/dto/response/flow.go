package response

type ConsentsResponse struct {
	StartNow     bool `json:"start_now"`
	RefundPolicy bool `json:"refund_policy"`
	Privacy      bool `json:"privacy"`
}

type IntakeResponse struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	OptionID string           `json:"option_id"`
	Details  string           `json:"details"`
	Consents ConsentsResponse `json:"consents"`
}

type FlowResponse struct {
	ID          string         `json:"id"`
	BookingRef  string         `json:"booking_ref"`
	ServiceID   string         `json:"service_id"`
	State       string         `json:"state"`
	Locale      string         `json:"locale"`
	Intake      IntakeResponse `json:"intake"`
	AmountLabel string         `json:"amount_label,omitempty"`
	// ClientSecret is only present while payment is pending; it scopes the
	// embedded payment UI to exactly one payment.
	ClientSecret string `json:"client_secret,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	Error        string `json:"error,omitempty"`
}

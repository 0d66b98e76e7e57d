package request

type StartFlowRequest struct {
	ServiceID string `json:"service_id" validate:"required,max=50"`
	Locale    string `json:"locale" validate:"omitempty,oneof=en it"`
}

type ConsentsRequest struct {
	StartNow     bool `json:"start_now"`
	RefundPolicy bool `json:"refund_policy"`
	Privacy      bool `json:"privacy"`
}

// SubmitIntakeRequest carries the intake form fields. Nothing here is tagged
// required: presence checks happen in the intake validator so the first
// failing rule is reported in its fixed priority order, not in struct-tag
// order.
type SubmitIntakeRequest struct {
	Name     string          `json:"name" validate:"omitempty,max=200"`
	Email    string          `json:"email" validate:"omitempty,max=255"`
	Phone    string          `json:"phone" validate:"omitempty,max=50"`
	OptionID string          `json:"option_id" validate:"omitempty,max=50"`
	Details  string          `json:"details" validate:"omitempty,max=4000"`
	Consents ConsentsRequest `json:"consents"`
}

type ConfirmPaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"omitempty,max=100"`
}

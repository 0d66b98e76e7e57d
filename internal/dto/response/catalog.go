package response

type OptionResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	AmountLabel string `json:"amount_label"`
	AmountPence int64  `json:"amount_pence"`
	Currency    string `json:"currency"`
}

type ServiceResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Options []OptionResponse `json:"options"`
}

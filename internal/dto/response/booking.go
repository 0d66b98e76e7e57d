package response

import (
	"time"

	"sportello-booking/internal/data/entity"
)

type BookingResponse struct {
	BookingRef  string               `json:"booking_ref"`
	ServiceID   string               `json:"service_id"`
	OptionID    string               `json:"option_id"`
	AmountLabel string               `json:"amount_label"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Locale      string               `json:"locale"`
	Status      entity.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// Package intake validates a booking draft before it may progress to payment.
package intake

import (
	"strings"

	"sportello-booking/internal/catalog"
	"sportello-booking/internal/data/entity"
	"sportello-booking/internal/i18n"
	"sportello-booking/pkg/utils"
)

// Validate checks the draft against the intake rules in fixed priority order
// and returns the first failing rule as a localized message. An empty message
// means the draft is valid. Only one failure is surfaced per attempt,
// mirroring the one-blocking-issue-per-submit behaviour of the form.
//
// Order:
//  1. contact fields present and well-formed
//  2. a service option chosen from the catalog
//  3. start-immediately acknowledgement
//  4. refund-policy acceptance
//  5. privacy-consent acceptance
func Validate(draft *entity.IntakeDraft) string {
	locale := draft.Locale

	if strings.TrimSpace(draft.Name) == "" {
		return i18n.T(locale, i18n.MsgNameRequired)
	}
	email := strings.TrimSpace(draft.Email)
	if email == "" {
		return i18n.T(locale, i18n.MsgEmailRequired)
	}
	if !utils.IsValidEmail(email) {
		return i18n.T(locale, i18n.MsgEmailInvalid)
	}

	if draft.OptionID == "" {
		return i18n.T(locale, i18n.MsgOptionRequired)
	}
	if _, ok := catalog.FindOption(draft.OptionID); !ok {
		return i18n.T(locale, i18n.MsgOptionRequired)
	}

	if !draft.Consents.StartNow {
		return i18n.T(locale, i18n.MsgStartNowRequired)
	}
	if !draft.Consents.RefundPolicy {
		return i18n.T(locale, i18n.MsgRefundRequired)
	}
	if !draft.Consents.Privacy {
		return i18n.T(locale, i18n.MsgPrivacyRequired)
	}

	return ""
}

package i18n

// The site is served in English and Italian. The locale never changes
// behaviour, only which string is shown; unknown locales fall back to English.

const (
	LocaleEN = "en"
	LocaleIT = "it"
)

// Normalize maps any locale tag to one of the supported locales.
func Normalize(locale string) string {
	if locale == LocaleIT {
		return LocaleIT
	}
	return LocaleEN
}

const (
	MsgNameRequired     = "name_required"
	MsgEmailRequired    = "email_required"
	MsgEmailInvalid     = "email_invalid"
	MsgOptionRequired   = "option_required"
	MsgStartNowRequired = "start_now_required"
	MsgRefundRequired   = "refund_required"
	MsgPrivacyRequired  = "privacy_required"
	MsgSessionFailed    = "session_failed"
	MsgPaymentDetails   = "payment_details_incomplete"
	MsgPaymentFailed    = "payment_failed"
)

var messages = map[string]map[string]string{
	MsgNameRequired: {
		LocaleEN: "Please enter your full name.",
		LocaleIT: "Inserisci il tuo nome completo.",
	},
	MsgEmailRequired: {
		LocaleEN: "Please enter your email address.",
		LocaleIT: "Inserisci il tuo indirizzo email.",
	},
	MsgEmailInvalid: {
		LocaleEN: "Please enter a valid email address.",
		LocaleIT: "Inserisci un indirizzo email valido.",
	},
	MsgOptionRequired: {
		LocaleEN: "Please choose a service option.",
		LocaleIT: "Scegli un'opzione di servizio.",
	},
	MsgStartNowRequired: {
		LocaleEN: "Please confirm that we can start work on your request immediately.",
		LocaleIT: "Conferma che possiamo iniziare subito a lavorare sulla tua richiesta.",
	},
	MsgRefundRequired: {
		LocaleEN: "Please accept the refund policy.",
		LocaleIT: "Devi accettare la politica di rimborso.",
	},
	MsgPrivacyRequired: {
		LocaleEN: "Please accept the privacy policy.",
		LocaleIT: "Devi accettare l'informativa sulla privacy.",
	},
	MsgSessionFailed: {
		LocaleEN: "We could not start the payment. Please try again.",
		LocaleIT: "Non è stato possibile avviare il pagamento. Riprova.",
	},
	MsgPaymentDetails: {
		LocaleEN: "Please complete your payment details.",
		LocaleIT: "Completa i dati di pagamento.",
	},
	MsgPaymentFailed: {
		LocaleEN: "Payment failed. Please check your details and try again.",
		LocaleIT: "Pagamento non riuscito. Controlla i dati e riprova.",
	},
}

// T returns the message for key in the given locale, falling back to English.
func T(locale, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := m[Normalize(locale)]; ok {
		return msg
	}
	return m[LocaleEN]
}

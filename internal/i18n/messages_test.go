package i18n

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", LocaleEN},
		{"it", LocaleIT},
		{"", LocaleEN},
		{"de", LocaleEN},
		{"IT", LocaleEN}, // tags are lowercase on the wire
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestT(t *testing.T) {
	if got := T("en", MsgPrivacyRequired); got != "Please accept the privacy policy." {
		t.Errorf("T(en, privacy) = %q", got)
	}
	if got := T("it", MsgPrivacyRequired); got != "Devi accettare l'informativa sulla privacy." {
		t.Errorf("T(it, privacy) = %q", got)
	}
	// Unknown locale falls back to English.
	if got := T("de", MsgNameRequired); got != "Please enter your full name." {
		t.Errorf("T(de, name) = %q", got)
	}
	// Unknown key comes back as-is rather than blank.
	if got := T("en", "no_such_key"); got != "no_such_key" {
		t.Errorf("T(en, unknown) = %q", got)
	}
}

func TestEveryMessageHasBothLocales(t *testing.T) {
	keys := []string{
		MsgNameRequired, MsgEmailRequired, MsgEmailInvalid, MsgOptionRequired,
		MsgStartNowRequired, MsgRefundRequired, MsgPrivacyRequired,
		MsgSessionFailed, MsgPaymentDetails, MsgPaymentFailed,
	}
	for _, key := range keys {
		for _, locale := range []string{LocaleEN, LocaleIT} {
			if msg := T(locale, key); msg == "" || msg == key {
				t.Errorf("message %q missing %s translation", key, locale)
			}
		}
	}
}

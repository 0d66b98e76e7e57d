package catalog

import (
	"fmt"
	"strings"

	"sportello-booking/internal/i18n"
)

// The catalog is a fixed product enumeration compiled into the binary. Prices
// are not data: the amount charged is implied by the chosen option and must
// never be settable from outside.

type Service struct {
	ID    string
	Names map[string]string
}

type Option struct {
	ID          string
	ServiceID   string
	AmountPence int64
	Currency    string
	Labels      map[string]string
}

var services = []Service{
	{
		ID: "citizenship-descent",
		Names: map[string]string{
			i18n.LocaleEN: "Italian citizenship by descent",
			i18n.LocaleIT: "Cittadinanza italiana per discendenza",
		},
	},
	{
		ID: "family-travel-check",
		Names: map[string]string{
			i18n.LocaleEN: "Family travel document check",
			i18n.LocaleIT: "Verifica documenti di viaggio per la famiglia",
		},
	},
}

var options = []Option{
	{
		ID:          "guide-35",
		ServiceID:   "citizenship-descent",
		AmountPence: 3500,
		Currency:    "gbp",
		Labels: map[string]string{
			i18n.LocaleEN: "Step-by-step guide and document checklist review",
			i18n.LocaleIT: "Guida passo passo e revisione della checklist documenti",
		},
	},
	{
		ID:          "consult-75",
		ServiceID:   "citizenship-descent",
		AmountPence: 7500,
		Currency:    "gbp",
		Labels: map[string]string{
			i18n.LocaleEN: "One-to-one consultation with a case worker",
			i18n.LocaleIT: "Consulenza individuale con un operatore",
		},
	},
	{
		ID:          "full-250",
		ServiceID:   "citizenship-descent",
		AmountPence: 25000,
		Currency:    "gbp",
		Labels: map[string]string{
			i18n.LocaleEN: "Full application handling",
			i18n.LocaleIT: "Gestione completa della pratica",
		},
	},
	{
		ID:          "travel-check-50",
		ServiceID:   "family-travel-check",
		AmountPence: 5000,
		Currency:    "gbp",
		Labels: map[string]string{
			i18n.LocaleEN: "Travel document check for the whole family",
			i18n.LocaleIT: "Verifica documenti di viaggio per tutta la famiglia",
		},
	},
}

func Services() []Service {
	return services
}

func Options() []Option {
	return options
}

func FindService(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func FindOption(id string) (Option, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// OptionsForService returns the options of one service in catalog order.
func OptionsForService(serviceID string) []Option {
	var out []Option
	for _, o := range options {
		if o.ServiceID == serviceID {
			out = append(out, o)
		}
	}
	return out
}

func (s Service) Name(locale string) string {
	if n, ok := s.Names[i18n.Normalize(locale)]; ok {
		return n
	}
	return s.Names[i18n.LocaleEN]
}

func (o Option) Label(locale string) string {
	if l, ok := o.Labels[i18n.Normalize(locale)]; ok {
		return l
	}
	return o.Labels[i18n.LocaleEN]
}

// AmountLabel formats the price for display, e.g. "£35" or "£37.50".
func (o Option) AmountLabel() string {
	sym := currencySymbol(o.Currency)
	if o.AmountPence%100 == 0 {
		return fmt.Sprintf("%s%d", sym, o.AmountPence/100)
	}
	return fmt.Sprintf("%s%.2f", sym, float64(o.AmountPence)/100)
}

func currencySymbol(currency string) string {
	switch strings.ToLower(currency) {
	case "gbp":
		return "£"
	case "eur":
		return "€"
	default:
		return strings.ToUpper(currency) + " "
	}
}

package catalog

import "testing"

func TestAmountLabel(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want string
	}{
		{"whole pounds", Option{AmountPence: 3500, Currency: "gbp"}, "£35"},
		{"pence kept", Option{AmountPence: 3750, Currency: "gbp"}, "£37.50"},
		{"euros", Option{AmountPence: 5000, Currency: "eur"}, "€50"},
		{"unknown currency", Option{AmountPence: 1200, Currency: "usd"}, "USD 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.AmountLabel(); got != tt.want {
				t.Errorf("AmountLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindOption(t *testing.T) {
	opt, ok := FindOption("guide-35")
	if !ok {
		t.Fatal("guide-35 missing from catalog")
	}
	if opt.ServiceID != "citizenship-descent" {
		t.Errorf("guide-35 service = %q, want citizenship-descent", opt.ServiceID)
	}
	if opt.AmountPence != 3500 || opt.Currency != "gbp" {
		t.Errorf("guide-35 price = %d %s, want 3500 gbp", opt.AmountPence, opt.Currency)
	}

	if _, ok := FindOption("gold-9000"); ok {
		t.Error("unknown option resolved")
	}
	if _, ok := FindOption(""); ok {
		t.Error("empty option id resolved")
	}
}

func TestOptionsForService(t *testing.T) {
	opts := OptionsForService("citizenship-descent")
	if len(opts) != 3 {
		t.Fatalf("citizenship-descent options = %d, want 3", len(opts))
	}
	// Catalog order is display order.
	want := []string{"guide-35", "consult-75", "full-250"}
	for i, id := range want {
		if opts[i].ID != id {
			t.Errorf("option[%d] = %q, want %q", i, opts[i].ID, id)
		}
	}

	if opts := OptionsForService("no-such-service"); len(opts) != 0 {
		t.Errorf("unknown service returned %d options", len(opts))
	}
}

func TestLocalizedNamesFallBackToEnglish(t *testing.T) {
	svc, _ := FindService("citizenship-descent")
	if svc.Name("it") != "Cittadinanza italiana per discendenza" {
		t.Errorf("Italian name = %q", svc.Name("it"))
	}
	if svc.Name("de") != svc.Name("en") {
		t.Errorf("unsupported locale did not fall back: %q", svc.Name("de"))
	}

	opt, _ := FindOption("travel-check-50")
	if opt.Label("fr") != opt.Label("en") {
		t.Errorf("unsupported locale did not fall back: %q", opt.Label("fr"))
	}
}

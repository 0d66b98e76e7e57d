package intake

import (
	"testing"

	"sportello-booking/internal/data/entity"
)

func validDraft() entity.IntakeDraft {
	return entity.IntakeDraft{
		Name:     "Maria Rossi",
		Email:    "maria@example.com",
		OptionID: "guide-35",
		Consents: entity.ConsentFlags{
			StartNow:     true,
			RefundPolicy: true,
			Privacy:      true,
		},
		Locale: "en",
	}
}

func TestValidate_FixedPriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *entity.IntakeDraft)
		want   string
	}{
		{
			name:   "valid draft",
			mutate: func(d *entity.IntakeDraft) {},
			want:   "",
		},
		{
			name: "empty draft reports name before everything else",
			mutate: func(d *entity.IntakeDraft) {
				*d = entity.IntakeDraft{Locale: "en"}
			},
			want: "Please enter your full name.",
		},
		{
			name:   "whitespace-only name",
			mutate: func(d *entity.IntakeDraft) { d.Name = "  \t " },
			want:   "Please enter your full name.",
		},
		{
			name:   "email missing",
			mutate: func(d *entity.IntakeDraft) { d.Email = "" },
			want:   "Please enter your email address.",
		},
		{
			name:   "email malformed",
			mutate: func(d *entity.IntakeDraft) { d.Email = "maria@@example" },
			want:   "Please enter a valid email address.",
		},
		{
			name:   "option missing",
			mutate: func(d *entity.IntakeDraft) { d.OptionID = "" },
			want:   "Please choose a service option.",
		},
		{
			name:   "option not in catalog",
			mutate: func(d *entity.IntakeDraft) { d.OptionID = "gold-9000" },
			want:   "Please choose a service option.",
		},
		{
			name:   "start-now unchecked",
			mutate: func(d *entity.IntakeDraft) { d.Consents.StartNow = false },
			want:   "Please confirm that we can start work on your request immediately.",
		},
		{
			name:   "refund policy unchecked",
			mutate: func(d *entity.IntakeDraft) { d.Consents.RefundPolicy = false },
			want:   "Please accept the refund policy.",
		},
		{
			name:   "privacy unchecked",
			mutate: func(d *entity.IntakeDraft) { d.Consents.Privacy = false },
			want:   "Please accept the privacy policy.",
		},
		{
			name: "start-now reported before refund and privacy",
			mutate: func(d *entity.IntakeDraft) {
				d.Consents = entity.ConsentFlags{}
			},
			want: "Please confirm that we can start work on your request immediately.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			if got := Validate(&d); got != tt.want {
				t.Errorf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate_Italian(t *testing.T) {
	d := validDraft()
	d.Locale = "it"
	d.Consents.Privacy = false

	if got := Validate(&d); got != "Devi accettare l'informativa sulla privacy." {
		t.Errorf("Validate() = %q, want Italian privacy message", got)
	}
}

func TestValidate_PhoneIsOptional(t *testing.T) {
	d := validDraft()
	d.Phone = ""
	if got := Validate(&d); got != "" {
		t.Errorf("Validate() = %q, want valid without phone", got)
	}
}

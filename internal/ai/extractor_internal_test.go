package ai

import (
	"testing"
	"time"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"Γεια σας!", "Γεια σας!"},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPayloadToOffer_NullDefaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	offer := payloadToOffer(extractionPayload{}, now)
	if offer.Installations != 1 {
		t.Errorf("null installations → %d, want 1", offer.Installations)
	}
	if got := offer.UnitPrice.StringFixed(2); got != "120.00" {
		t.Errorf("null unit price → %s, want 120.00", got)
	}
	if !offer.IncludeTechDescription || !offer.IncludeTaxSolutions {
		t.Errorf("null booleans must default to true")
	}
	if offer.OfferValidUntil != "31/03/2025" {
		t.Errorf("null valid-until → %q, want 31/03/2025", offer.OfferValidUntil)
	}
}

func TestPayloadToOffer_StatedValues(t *testing.T) {
	now := time.Now()
	company := " Ακμή Α.Ε. "
	installations := 4
	price := 99.9
	tech := false

	offer := payloadToOffer(extractionPayload{
		ClientCompany:          &company,
		Installations:          &installations,
		UnitPrice:              &price,
		IncludeTechDescription: &tech,
	}, now)

	if offer.ClientCompany != "Ακμή Α.Ε." {
		t.Errorf("company = %q, want trimmed value", offer.ClientCompany)
	}
	if offer.Installations != 4 {
		t.Errorf("installations = %d, want 4", offer.Installations)
	}
	if got := offer.UnitPrice.StringFixed(2); got != "99.90" {
		t.Errorf("unit price = %s, want 99.90", got)
	}
	if offer.IncludeTechDescription {
		t.Errorf("stated false boolean must survive normalization")
	}
	if !offer.IncludeTaxSolutions {
		t.Errorf("unstated boolean must default to true")
	}
}

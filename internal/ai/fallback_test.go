package ai_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"offer-agent/internal/ai"
)

func TestFallback_ExtractsFields(t *testing.T) {
	text := "Θέλω προσφορά για την εταιρεία Ακμή Α.Ε., οδό Σταδίου 10, τκ 10564, " +
		"περιοχή Αθήνα, τηλ 2101234567, 3 εγκαταστάσεις με 150,50 € μέχρι 31/12/2026"

	result, err := ai.NewFallback().Attempt(context.Background(), text)
	if err != nil {
		t.Fatalf("fallback must never fail, got %v", err)
	}
	if result.Kind != ai.ResultOffer {
		t.Fatalf("fallback must always return offer data, got %s", result.Kind)
	}

	a := result.Offer
	if a.ClientAddress != "Σταδίου 10" {
		t.Errorf("address = %q, want Σταδίου 10", a.ClientAddress)
	}
	if a.ClientTK != "10564" {
		t.Errorf("tk = %q, want 10564", a.ClientTK)
	}
	if a.ClientArea != "Αθήνα" {
		t.Errorf("area = %q, want Αθήνα", a.ClientArea)
	}
	if a.ClientPhone != "2101234567" {
		t.Errorf("phone = %q, want 2101234567", a.ClientPhone)
	}
	if a.Installations != 3 {
		t.Errorf("installations = %d, want 3", a.Installations)
	}
	if got := a.UnitPrice.StringFixed(2); got != "150.50" {
		t.Errorf("unit price = %s, want 150.50", got)
	}
	if a.OfferValidUntil != "31/12/2026" {
		t.Errorf("valid-until = %q, want 31/12/2026", a.OfferValidUntil)
	}
	if !a.IncludeTechDescription || !a.IncludeTaxSolutions {
		t.Errorf("section toggles must stay at their defaults")
	}
}

func TestFallback_SparseTextKeepsDefaults(t *testing.T) {
	result, err := ai.NewFallback().Attempt(context.Background(), "γεια σας")
	if err != nil {
		t.Fatalf("fallback must never fail, got %v", err)
	}

	a := result.Offer
	if a.ClientCompany != "" || a.ClientArea != "" {
		t.Errorf("no client fields should be extracted from a greeting")
	}
	if a.Installations != 1 || a.UnitPrice.StringFixed(2) != "120.00" {
		t.Errorf("commercial defaults lost: %d, %s", a.Installations, a.UnitPrice)
	}
}

func TestFallback_SectionExclusions(t *testing.T) {
	tests := []struct {
		text     string
		wantTech bool
		wantTax  bool
	}{
		{"προσφορά χωρίς τεχνική περιγραφή", false, true},
		{"βγάλτε την φορολογική σήμανση", true, false},
		{"χωρίς τεχνική περιγραφή και χωρίς φορολογική σήμανση", false, false},
		{"κανονική προσφορά", true, true},
	}
	for _, tt := range tests {
		result, _ := ai.NewFallback().Attempt(context.Background(), tt.text)
		if result.Offer.IncludeTechDescription != tt.wantTech {
			t.Errorf("%q: tech = %v, want %v", tt.text, result.Offer.IncludeTechDescription, tt.wantTech)
		}
		if result.Offer.IncludeTaxSolutions != tt.wantTax {
			t.Errorf("%q: tax = %v, want %v", tt.text, result.Offer.IncludeTaxSolutions, tt.wantTax)
		}
	}
}

func TestFallback_TwoDigitYearExpansion(t *testing.T) {
	result, _ := ai.NewFallback().Attempt(context.Background(), "ισχύει μέχρι 15/06/26")
	century := fmt.Sprintf("%d", time.Now().Year())[:2]
	want := "15/06/" + century + "26"
	if result.Offer.OfferValidUntil != want {
		t.Errorf("valid-until = %q, want %q", result.Offer.OfferValidUntil, want)
	}
}

func TestFallback_CompanyPunctuationStripped(t *testing.T) {
	result, _ := ai.NewFallback().Attempt(context.Background(), "προσφορά για την επιχείρηση Ωμέγα Ε.Π.Ε.")
	if result.Offer.ClientCompany != "Ωμέγα ΕΠΕ" {
		t.Errorf("company = %q, want Ωμέγα ΕΠΕ", result.Offer.ClientCompany)
	}
}

package core_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"offer-agent/internal/core"

	"github.com/shopspring/decimal"
)

func TestMaterialize_ProtocolNumberFormat(t *testing.T) {
	now := time.Unix(1735689600, 0) // 01/01/2025 00:00:00 UTC
	a := core.NewOfferAttributes(now)
	a.Materialize(now)

	if a.ProtocolNumber != "PR1735689600" {
		t.Errorf("protocol number = %q, want PR1735689600", a.ProtocolNumber)
	}
	if a.IssueDate != now.Format(core.DateLayout) {
		t.Errorf("issue date = %q, want %q", a.IssueDate, now.Format(core.DateLayout))
	}
	if a.ProtocolSortKey() != 1735689600 {
		t.Errorf("sort key = %d, want 1735689600", a.ProtocolSortKey())
	}
}

func TestFilename_StripsSpacesAndPunctuation(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{"Δοκιμαστική Εταιρεία Α.Ε.", "Offer_Δοκιμαστική_Εταιρεία_ΑΕ.pdf"},
		{"S-Team, OE", "Offer_S-Team_OE.pdf"},
		{"Acme", "Offer_Acme.pdf"},
	}
	for _, tt := range tests {
		a := core.OfferAttributes{ClientCompany: tt.company}
		if got := a.Filename(); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.company, got, tt.want)
		}
	}
}

func TestNewOfferAttributes_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := core.NewOfferAttributes(now)

	if a.Installations != 1 {
		t.Errorf("default installations = %d, want 1", a.Installations)
	}
	if got := a.UnitPrice.StringFixed(2); got != "120.00" {
		t.Errorf("default unit price = %s, want 120.00", got)
	}
	if a.OfferValidUntil != "01/07/2025" {
		t.Errorf("default valid-until = %s, want 01/07/2025 (30 days out)", a.OfferValidUntil)
	}
	if !a.IncludeTechDescription || !a.IncludeTaxSolutions {
		t.Errorf("section toggles must default to true")
	}
	if a.TaxSolutionChoice != core.TaxSolutionNone {
		t.Errorf("tax solution choice = %q, want none", a.TaxSolutionChoice)
	}
}

func TestNormalize_RestoresDefaults(t *testing.T) {
	now := time.Now()
	a := core.OfferAttributes{
		ClientCompany:     "  Acme  ",
		Installations:     -2,
		UnitPrice:         decimal.NewFromInt(-5),
		TaxSolutionChoice: core.TaxSolution("garbage"),
	}
	a.Normalize(now)

	if a.ClientCompany != "Acme" {
		t.Errorf("company not trimmed: %q", a.ClientCompany)
	}
	if a.Installations != 1 {
		t.Errorf("installations = %d, want 1", a.Installations)
	}
	if got := a.UnitPrice.StringFixed(2); got != "120.00" {
		t.Errorf("unit price = %s, want 120.00", got)
	}
	if a.OfferValidUntil != core.DefaultValidUntil(now) {
		t.Errorf("valid-until = %q, want default", a.OfferValidUntil)
	}
	if a.TaxSolutionChoice != core.TaxSolutionNone {
		t.Errorf("tax solution choice = %q, want none", a.TaxSolutionChoice)
	}
}

func TestOfferAttributes_JSONRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 0)
	a := core.NewOfferAttributes(now)
	a.ClientCompany = "Acme"
	a.ClientAddress = "Σταδίου 10"
	a.ClientTK = "10564"
	a.ClientArea = "Αθήνα"
	a.Installations = 3
	a.UnitPrice = decimal.RequireFromString("150.00")
	a.TaxSolutionChoice = core.TaxSolutionProvider
	a.EInvoicingPackage = "Service Pack Fuel 50K"
	a.Materialize(now)

	payload, err := json.Marshal(&a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var b core.OfferAttributes
	if err := json.Unmarshal(payload, &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if b.ProtocolNumber != a.ProtocolNumber || b.ClientCompany != a.ClientCompany {
		t.Errorf("identity fields lost in round trip")
	}
	if !b.UnitPrice.Equal(a.UnitPrice) {
		t.Errorf("unit price %s != %s after round trip", b.UnitPrice, a.UnitPrice)
	}
	if !core.GrandTotal(&b).Equal(core.GrandTotal(&a)) {
		t.Errorf("grand total changed in round trip: %s != %s",
			core.GrandTotal(&b), core.GrandTotal(&a))
	}
	if strings.Contains(string(payload), "custom_title") {
		t.Errorf("blank optional fields must be omitted from the payload")
	}
}

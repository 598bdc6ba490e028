package core_test

import (
	"testing"
	"time"

	"offer-agent/internal/core"

	"github.com/shopspring/decimal"
)

func TestGrandTotal_Law(t *testing.T) {
	tests := []struct {
		name          string
		installations int
		unitPrice     string
		choice        core.TaxSolution
		pkg           string
		wantTotal     string
	}{
		{
			name:          "provider tier example",
			installations: 3,
			unitPrice:     "150.00",
			choice:        core.TaxSolutionProvider,
			pkg:           "Service Pack Fuel 50K",
			wantTotal:     "900.00",
		},
		{
			name:          "fiscal device adds 480",
			installations: 2,
			unitPrice:     "120.00",
			choice:        core.TaxSolutionDevice,
			wantTotal:     "720.00",
		},
		{
			name:          "no choice adds nothing",
			installations: 1,
			unitPrice:     "120.00",
			choice:        core.TaxSolutionNone,
			wantTotal:     "120.00",
		},
		{
			name:          "unrecognized package defaults to zero extra",
			installations: 1,
			unitPrice:     "100.00",
			choice:        core.TaxSolutionProvider,
			pkg:           "Service Pack Diesel 9000",
			wantTotal:     "100.00",
		},
		{
			name:          "largest tier",
			installations: 1,
			unitPrice:     "0.00",
			choice:        core.TaxSolutionProvider,
			pkg:           "Service Pack Fuel 1M",
			wantTotal:     "2000.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := core.NewOfferAttributes(time.Now())
			a.Installations = tt.installations
			a.UnitPrice = decimal.RequireFromString(tt.unitPrice)
			a.TaxSolutionChoice = tt.choice
			a.EInvoicingPackage = tt.pkg

			if got := core.GrandTotal(&a).StringFixed(2); got != tt.wantTotal {
				t.Errorf("GrandTotal() = %s, want %s", got, tt.wantTotal)
			}
			// total == base + extra must hold exactly
			sum := core.BaseCost(&a).Add(core.ExtraCost(&a))
			if !core.GrandTotal(&a).Equal(sum) {
				t.Errorf("GrandTotal() = %s, base+extra = %s", core.GrandTotal(&a), sum)
			}
		})
	}
}

func TestEInvoicingTiers_Fixed(t *testing.T) {
	if len(core.EInvoicingTiers) != 8 {
		t.Fatalf("expected 8 provider tiers, got %d", len(core.EInvoicingTiers))
	}
	tier, ok := core.TierByName("Service Pack Fuel 50K")
	if !ok {
		t.Fatalf("tier lookup failed")
	}
	if got := tier.Price.StringFixed(2); got != "450.00" {
		t.Errorf("Fuel 50K price = %s, want 450.00", got)
	}
	if _, ok := core.TierByName("service pack fuel 50k"); ok {
		t.Errorf("tier lookup must be exact-match")
	}
}

func TestSupportHourPlans_Fixed(t *testing.T) {
	want := map[string]string{
		"2 ώρες": "150.00", "5 ώρες": "270.00", "10 ώρες": "520.00",
		"20 ώρες": "940.00", "30 ώρες": "1450.00", "50 ώρες": "2250.00",
	}
	if len(core.SupportHourPlans) != len(want) {
		t.Fatalf("expected %d support plans, got %d", len(want), len(core.SupportHourPlans))
	}
	for _, p := range core.SupportHourPlans {
		if want[p.Hours] != p.Price.StringFixed(2) {
			t.Errorf("plan %s price = %s, want %s", p.Hours, p.Price.StringFixed(2), want[p.Hours])
		}
	}
}

package web

import (
	"testing"
	"time"

	"offer-agent/internal/core"

	"github.com/shopspring/decimal"
)

func TestDraftMerge_AdoptsOnlyStatedValues(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	attrs := core.NewOfferAttributes(now)
	d := &draft{Attrs: attrs, defaults: attrs}

	first := core.NewOfferAttributes(now)
	first.ClientCompany = "Ακμή ΑΕ"
	first.Installations = 3
	first.UnitPrice = decimal.NewFromInt(150)
	d.merge(&first)

	if d.Attrs.ClientCompany != "Ακμή ΑΕ" {
		t.Errorf("company = %q, want stated value", d.Attrs.ClientCompany)
	}
	if d.Attrs.Installations != 3 {
		t.Errorf("installations = %d, want 3", d.Attrs.Installations)
	}

	// A later message stating only the area must not reset earlier fields
	// back to their defaults.
	second := core.NewOfferAttributes(now)
	second.ClientArea = "Αθήνα"
	d.merge(&second)

	if d.Attrs.ClientCompany != "Ακμή ΑΕ" || d.Attrs.Installations != 3 {
		t.Errorf("earlier stated fields were reset: %+v", d.Attrs)
	}
	if got := d.Attrs.UnitPrice.StringFixed(2); got != "150.00" {
		t.Errorf("unit price = %s, want 150.00", got)
	}
	if d.Attrs.ClientArea != "Αθήνα" {
		t.Errorf("area = %q, want stated value", d.Attrs.ClientArea)
	}
}

func TestDraftMerge_SectionToggles(t *testing.T) {
	now := time.Now()
	attrs := core.NewOfferAttributes(now)
	d := &draft{Attrs: attrs, defaults: attrs}

	extracted := core.NewOfferAttributes(now)
	extracted.IncludeTechDescription = false
	d.merge(&extracted)

	if d.Attrs.IncludeTechDescription {
		t.Errorf("stated exclusion must be adopted")
	}
	if !d.Attrs.IncludeTaxSolutions {
		t.Errorf("unstated toggle must keep its default")
	}
}

func TestDraftStore_Expiry(t *testing.T) {
	s := newDraftStore()
	current := time.Now()
	s.now = func() time.Time { return current }

	s.update(1, func(d *draft) { d.Attrs.ClientCompany = "Ακμή ΑΕ" })
	if got := s.get(1); got.Attrs.ClientCompany != "Ακμή ΑΕ" {
		t.Fatalf("live draft lost its state")
	}

	current = current.Add(draftTTL + time.Minute)
	if got := s.get(1); got.Attrs.ClientCompany != "" {
		t.Errorf("expired draft must be replaced with a fresh one, got %q", got.Attrs.ClientCompany)
	}
}

func TestDraftStore_ClearDiscardsTranscript(t *testing.T) {
	s := newDraftStore()
	s.update(7, func(d *draft) {
		d.Messages = append(d.Messages, chatLine{Role: "user", Text: "γεια"})
	})
	s.clear(7)

	if got := s.get(7); len(got.Messages) != 0 {
		t.Errorf("cleared draft still has %d messages", len(got.Messages))
	}
}

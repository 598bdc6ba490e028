package render_test

import (
	"reflect"
	"testing"
	"time"

	"offer-agent/internal/core"
	"offer-agent/internal/render"
)

func testAttrs() core.OfferAttributes {
	a := core.NewOfferAttributes(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	a.ClientCompany = "Δοκιμαστική Εταιρεία Α.Ε."
	a.ClientAddress = "Σταδίου 10"
	a.ClientTK = "10564"
	a.ClientArea = "Αθήνα"
	return a
}

func TestBuildPlan_AllSectionsIncluded(t *testing.T) {
	a := testAttrs()

	plan := render.BuildPlan(&a)
	if len(plan.Sections) != 6 {
		t.Fatalf("sections = %d, want 6", len(plan.Sections))
	}
	for i, s := range plan.Sections {
		if s.Chapter != i+1 || s.Page != i+1 {
			t.Errorf("section %s numbered %d/page %d, want %d/%d", s.ID, s.Chapter, s.Page, i+1, i+1)
		}
	}
	if plan.TOC[2].Label != "3. ΟΙΚΟΝΟΜΙΚΗ ΠΡΟΤΑΣΗ" {
		t.Errorf("TOC[2] = %q", plan.TOC[2].Label)
	}
}

func TestBuildPlan_TogglesShiftNumbering(t *testing.T) {
	a := testAttrs()
	a.IncludeTechDescription = false
	a.IncludeTaxSolutions = false

	plan := render.BuildPlan(&a)
	if len(plan.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(plan.Sections))
	}
	for _, s := range plan.Sections {
		if s.ID == render.SectionTechDesc || s.ID == render.SectionTaxSolutions {
			t.Errorf("excluded section %s still planned", s.ID)
		}
	}
	if got := plan.Heading(render.SectionFinancials); got != "2. ΟΙΚΟΝΟΜΙΚΗ ΠΡΟΤΑΣΗ" {
		t.Errorf("financials heading = %q, want chapter 2 after exclusions", got)
	}
	if got := plan.Heading(render.SectionAcceptance); got != "4. ΣΥΜΠΛΗΡΩΣΗ ΣΤΟΙΧΕΙΩΝ" {
		t.Errorf("acceptance heading = %q", got)
	}
}

func TestBuildPlan_Deterministic(t *testing.T) {
	a := testAttrs()
	a.IncludeTaxSolutions = false

	first := render.BuildPlan(&a)
	second := render.BuildPlan(&a)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two planning passes over the same attributes disagree")
	}
}

func TestPlanHeading_UnplannedSection(t *testing.T) {
	a := testAttrs()
	a.IncludeTechDescription = false

	plan := render.BuildPlan(&a)
	if got := plan.Heading(render.SectionTechDesc); got != "" {
		t.Errorf("heading for excluded section = %q, want empty", got)
	}
}

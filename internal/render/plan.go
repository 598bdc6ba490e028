package render

import (
	"fmt"

	"offer-agent/internal/core"
)

// SectionID identifies one document section.
type SectionID string

const (
	SectionIntro        SectionID = "intro"
	SectionTechDesc     SectionID = "tech_desc"
	SectionFinancials   SectionID = "financials"
	SectionTaxSolutions SectionID = "tax_solutions"
	SectionTerms        SectionID = "terms"
	SectionAcceptance   SectionID = "acceptance"
)

// sectionDescriptor declares a section's place in the fixed order and its
// inclusion gate. Included is nil for always-included sections.
type sectionDescriptor struct {
	ID       SectionID
	Title    string
	Included func(*core.OfferAttributes) bool
}

// sectionOrder is the fixed section list. Introduction, Financial Proposal,
// Terms, and Acceptance are unconditional; the other two are gated by the
// attribute-set toggles.
var sectionOrder = []sectionDescriptor{
	{ID: SectionIntro, Title: "ΕΙΣΑΓΩΓΗ"},
	{ID: SectionTechDesc, Title: "ΤΕΧΝΙΚΗ ΠΕΡΙΓΡΑΦΗ",
		Included: func(a *core.OfferAttributes) bool { return a.IncludeTechDescription }},
	{ID: SectionFinancials, Title: "ΟΙΚΟΝΟΜΙΚΗ ΠΡΟΤΑΣΗ"},
	{ID: SectionTaxSolutions, Title: "ΛΥΣΕΙΣ ΦΟΡΟΛΟΓΙΚΗΣ ΣΗΜΑΝΣΗΣ",
		Included: func(a *core.OfferAttributes) bool { return a.IncludeTaxSolutions }},
	{ID: SectionTerms, Title: "ΟΡΟΙ ΚΑΙ ΠΡΟΥΠΟΘΕΣΕΙΣ"},
	{ID: SectionAcceptance, Title: "ΣΥΜΠΛΗΡΩΣΗ ΣΤΟΙΧΕΙΩΝ"},
}

// TOCEntry is one line of the table of contents printed on page 1: the
// numbered chapter label and its page number.
type TOCEntry struct {
	Label string
	Page  int
}

// PlannedSection is a section selected for rendering, with its assigned
// chapter and page numbers.
type PlannedSection struct {
	ID      SectionID
	Title   string
	Chapter int
	Page    int
}

// Plan is the output of the numbering pass. The render pass consumes it; the
// introduction renderer prints Plan.TOC on page 1.
type Plan struct {
	Sections []PlannedSection
	TOC      []TOCEntry
}

// BuildPlan is the numbering pass: it walks the fixed section order, keeps the
// sections whose gate evaluates true, and assigns sequential chapter and page
// numbers starting at 1. Each section is charged exactly one page — section
// bodies are fixed-length, so the plan stays a pure function of the two
// toggle flags.
func BuildPlan(a *core.OfferAttributes) Plan {
	var plan Plan
	chapter, page := 1, 1
	for _, s := range sectionOrder {
		if s.Included != nil && !s.Included(a) {
			continue
		}
		plan.Sections = append(plan.Sections, PlannedSection{
			ID:      s.ID,
			Title:   s.Title,
			Chapter: chapter,
			Page:    page,
		})
		plan.TOC = append(plan.TOC, TOCEntry{
			Label: fmt.Sprintf("%d. %s", chapter, s.Title),
			Page:  page,
		})
		chapter++
		page++
	}
	return plan
}

// Heading returns the numbered chapter heading for a planned section,
// e.g. "3. ΟΙΚΟΝΟΜΙΚΗ ΠΡΟΤΑΣΗ".
func (p Plan) Heading(id SectionID) string {
	for _, s := range p.Sections {
		if s.ID == id {
			return fmt.Sprintf("%d. %s", s.Chapter, s.Title)
		}
	}
	return ""
}

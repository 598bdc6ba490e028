package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"offer-agent/internal/core"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const fontFamily = "DejaVu"

var fontFiles = map[string]string{
	"":  "DejaVuSans.ttf",
	"B": "DejaVuSans-Bold.ttf",
}

// document carries the canvas and the inputs shared by the section renderers.
type document struct {
	pdf      *fpdf.Fpdf
	attrs    *core.OfferAttributes
	plan     Plan
	assetDir string
}

// Render assembles the complete offer document and returns its byte stream.
// It runs the numbering pass first, then renders each included section on a
// fresh page, the introduction first so it can print the table of contents.
// Any rendering error (missing font asset, layout failure) aborts the whole
// document; no partial output is retained.
func Render(a *core.OfferAttributes, assetDir string) ([]byte, error) {
	for _, file := range fontFiles {
		if _, err := os.Stat(filepath.Join(assetDir, file)); err != nil {
			return nil, fmt.Errorf("font asset %q not found in %s: %w", file, assetDir, err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", assetDir)
	for style, file := range fontFiles {
		pdf.AddUTF8Font(fontFamily, style, file)
	}
	if pdf.Err() {
		return nil, fmt.Errorf("initialize fonts: %w", pdf.Error())
	}

	// Running page-footer page number.
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	d := &document{pdf: pdf, attrs: a, plan: BuildPlan(a), assetDir: assetDir}
	for _, s := range d.plan.Sections {
		d.renderSection(s.ID)
		if pdf.Err() {
			return nil, fmt.Errorf("render section %s: %w", s.ID, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *document) renderSection(id SectionID) {
	switch id {
	case SectionIntro:
		d.renderIntro()
	case SectionTechDesc:
		d.renderTechDescription()
	case SectionFinancials:
		d.renderFinancials()
	case SectionTaxSolutions:
		d.renderTaxSolutions()
	case SectionTerms:
		d.renderTerms()
	case SectionAcceptance:
		d.renderAcceptance()
	}
}

// startPage opens a fresh page with the shared dark-gray border color.
func (d *document) startPage() {
	d.pdf.AddPage()
	d.pdf.SetDrawColor(100, 100, 100)
}

// heading prints the numbered chapter heading of a section.
func (d *document) heading(id SectionID, align string) {
	d.pdf.SetFont(fontFamily, "B", 14)
	d.pdf.CellFormat(0, 10, d.plan.Heading(id), "", 1, align, false, 0, "")
}

// bullet prints one bulleted paragraph in the current font.
func (d *document) bullet(text string, spacing float64) {
	d.pdf.MultiCell(0, 5, "•  "+text, "", "", false)
	d.pdf.Ln(spacing)
}

// assetPath returns the path of an optional image asset, or "" when absent.
func (d *document) assetPath(name string) string {
	path := filepath.Join(d.assetDir, name)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// euro formats a monetary value with exactly two decimal places.
func euro(v decimal.Decimal) string {
	return v.StringFixed(2)
}

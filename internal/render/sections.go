package render

import (
	"fmt"
	"strconv"
	"strings"

	"offer-agent/internal/core"

	"github.com/go-pdf/fpdf"
)

// renderIntro draws page 1: the client and protocol boxes, the cover letter,
// and the table of contents built from the plan.
func (d *document) renderIntro() {
	pdf := d.pdf
	d.startPage()

	if logo := d.assetPath("logo.png"); logo != "" {
		pdf.ImageOptions(logo, 150, 10, 50, 0, false, fpdf.ImageOptions{}, 0, "")
	}

	pdf.SetFont(fontFamily, "B", 12)
	pdf.SetXY(15, 40)
	pdf.CellFormat(0, 10, "ΣΤΟΙΧΕΙΑ ΠΕΛΑΤΗ", "", 0, "", false, 0, "")

	lines := []string{"Επωνυμία: " + d.attrs.ClientCompany}
	if d.attrs.ClientVATID != "" {
		lines = append(lines, "ΑΦΜ: "+d.attrs.ClientVATID)
	}
	lines = append(lines,
		"Οδός: "+d.attrs.ClientAddress,
		"Τ.Κ.: "+d.attrs.ClientTK,
		"Περιοχή: "+d.attrs.ClientArea,
	)
	if d.attrs.ClientPhone != "" {
		lines = append(lines, "Τηλέφωνο: "+d.attrs.ClientPhone)
	}
	pdf.SetFont(fontFamily, "", 11)
	pdf.SetXY(15, 50)
	pdf.MultiCell(90, 7, strings.Join(lines, "\n"), "1", "", false)

	pdf.SetXY(120, 50)
	pdf.MultiCell(75, 7, fmt.Sprintf("Αρ. Πρωτοκόλλου:\n%s\nΗμ. Έκδοσης: %s",
		d.attrs.ProtocolNumber, d.attrs.IssueDate), "1", "", false)

	title := d.attrs.CustomTitle
	if title == "" {
		title = defaultTitle
	}
	pdf.SetXY(15, 90)
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "", false, 0, "")

	body := d.attrs.CustomContent
	if body == "" {
		body = defaultIntroBody
	}
	pdf.SetXY(15, 105)
	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, 5, body, "", "", false)

	pdf.SetXY(15, 170)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 10, "Περιεχόμενα", "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	for _, e := range d.plan.TOC {
		pdf.SetX(15)
		pdf.CellFormat(80, 6, e.Label, "", 0, "", false, 0, "")
		pdf.CellFormat(0, 6, strconv.Itoa(e.Page), "", 1, "", false, 0, "")
	}
}

func (d *document) renderTechDescription() {
	pdf := d.pdf
	d.startPage()

	if logo := d.assetPath("upsales_logo.png"); logo != "" {
		pdf.ImageOptions(logo, 100, 10, 90, 0, false, fpdf.ImageOptions{}, 0, "")
		pdf.SetY(40)
	}
	d.heading(SectionTechDesc, "")
	pdf.Ln(5)

	pdf.SetFont(fontFamily, "", 10)
	for _, p := range techPointsGeneral {
		d.bullet(p, 2)
	}
	pdf.Ln(3)

	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(0, 8, "Η βασική έκδοση περιλαμβάνει:", "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	for _, p := range techPointsBaseEdition {
		d.bullet(p, 2)
	}
}

func (d *document) renderFinancials() {
	pdf := d.pdf
	d.startPage()
	d.heading(SectionFinancials, "")
	pdf.Ln(5)

	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 8, "Βασική έκδοση UpSales", "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, 5, "Σας αποστέλλουμε οικονομική προσφορά για την μηχανογράφηση / μηχανοργάνωση της εταιρείας σας.", "", "", false)
	pdf.Ln(5)

	d.tableHeader([]float64{100, 30, 60}, []string{"ΠΕΡΙΓΡΑΦΗ", "ΕΓΚΑΤΑΣΤΑΣΕΙΣ", "ΤΙΜΗ ΜΟΝΑΔΟΣ (€)"})

	pdf.SetFont(fontFamily, "", 10)
	yBefore := pdf.GetY()
	pdf.MultiCell(100, 5, baseEditionItems, "1", "", false)
	rowH := pdf.GetY() - yBefore
	pdf.SetXY(110, yBefore)
	pdf.CellFormat(30, rowH, strconv.Itoa(d.attrs.Installations), "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, rowH, euro(d.attrs.UnitPrice), "1", 1, "R", false, 0, "")

	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(130, 8, "ΣΥΝΟΛΟ ΒΑΣΙΚΗΣ ΕΚΔΟΣΗΣ", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 8, euro(core.BaseCost(d.attrs)), "1", 1, "R", false, 0, "")
	d.vatNote()
	pdf.Ln(8)

	d.tableHeader([]float64{130, 60}, []string{"ΠΕΡΙΓΡΑΦΗ", "ΤΙΜΗ"})
	pdf.SetFont(fontFamily, "", 10)
	yBefore = pdf.GetY()
	pdf.MultiCell(130, 5, annualLicenseDesc, "1", "", false)
	rowH = pdf.GetY() - yBefore
	pdf.SetXY(140, yBefore)
	pdf.CellFormat(60, rowH, annualLicensePrice, "1", 1, "C", false, 0, "")
	d.vatNote()
	pdf.Ln(8)

	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 8, "Υπηρεσίες", "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, 5, servicesIntro, "", "", false)
	pdf.Ln(3)

	d.tableHeader([]float64{110, 30, 50}, []string{"ΠΕΡΙΓΡΑΦΗ", "ΩΡΕΣ", "ΤΙΜΗ (€)"})
	pdf.SetFont(fontFamily, "", 10)
	for _, plan := range core.SupportHourPlans {
		pdf.CellFormat(110, 7, supportContractDesc, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, plan.Hours, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 7, euro(plan.Price), "1", 1, "R", false, 0, "")
	}
	d.vatNote()
	pdf.Ln(5)

	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(0, 8, "Πλεονεκτήματα Συμβολαίων Προαγοράς Ωρών:", "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	for _, p := range supportAdvantages {
		d.bullet(p, 1)
	}
}

func (d *document) renderTaxSolutions() {
	pdf := d.pdf
	d.startPage()
	d.heading(SectionTaxSolutions, "")
	pdf.Ln(5)

	d.tableHeader([]float64{140, 50}, []string{"ΦΟΡΟΛΟΓΙΚΗ ΣΗΜΑΝΣΗ", "ΤΙΜΗ"})
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(140, 8, core.FiscalDeviceName, "1", 0, "", false, 0, "")
	pdf.CellFormat(50, 8, euro(core.FiscalDevicePrice())+" € + ΦΠΑ", "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(190, 8, "ΠΑΡΟΧΟΣ Impact e-invoicing", "1", 1, "", false, 0, "")
	d.eInvoicingTable()
	pdf.Ln(8)

	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 8, "Επιλογή Πελάτη & Συνολικό Κόστος", "", 1, "", false, 0, "")
	d.tableHeader([]float64{140, 50}, []string{"ΠΕΡΙΓΡΑΦΗ", "ΑΞΙΑ (€)"})

	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(140, 7, fmt.Sprintf("Λογισμικό UpSales (%d × %s €)",
		d.attrs.Installations, euro(d.attrs.UnitPrice)), "1", 0, "", false, 0, "")
	pdf.CellFormat(50, 7, euro(core.BaseCost(d.attrs)), "1", 1, "R", false, 0, "")
	switch d.attrs.TaxSolutionChoice {
	case core.TaxSolutionDevice:
		pdf.CellFormat(140, 7, core.FiscalDeviceName, "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 7, euro(core.FiscalDevicePrice()), "1", 1, "R", false, 0, "")
	case core.TaxSolutionProvider:
		pdf.CellFormat(140, 7, "Πακέτο EINVOICING: "+d.attrs.EInvoicingPackage, "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 7, euro(core.ExtraCost(d.attrs)), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(146, 208, 80)
	pdf.CellFormat(140, 8, "ΓΕΝΙΚΟ ΣΥΝΟΛΟ", "1", 0, "", true, 0, "")
	pdf.CellFormat(50, 8, euro(core.GrandTotal(d.attrs)), "1", 1, "R", true, 0, "")
	d.vatNote()
}

// eInvoicingTable draws the nine-column provider price grid. Column widths are
// the fixed weights scaled to the usable page width; header cells are split
// over two 4mm lines so every box in the header row stays 8mm tall.
func (d *document) eInvoicingTable() {
	pdf := d.pdf
	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	usable := pageW - left - right

	var sum float64
	for _, w := range eInvoicingWeights {
		sum += w
	}
	widths := make([]float64, len(eInvoicingWeights))
	for i, w := range eInvoicingWeights {
		widths[i] = w / sum * usable
	}

	const headerH = 8.0
	pdf.SetFont(fontFamily, "B", 6)
	pdf.SetFillColor(146, 208, 80)
	pdf.SetTextColor(50, 50, 50)
	x, y := left, pdf.GetY()
	for i, label := range eInvoicingHeaders {
		lines := float64(strings.Count(label, "\n") + 1)
		pdf.SetXY(x, y)
		pdf.MultiCell(widths[i], headerH/lines, label, "1", "C", true)
		x += widths[i]
	}
	pdf.SetXY(left, y+headerH)

	pdf.SetFont(fontFamily, "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, tier := range core.EInvoicingTiers {
		cells := []string{
			tier.Name, tier.PriceDisplay, tier.RetailMax, tier.WholesaleMax, tier.B2GMax,
			tier.RetailUnit, tier.WholesaleUnit, tier.B2GUnit, tier.DiscountPrice,
		}
		for i, cell := range cells {
			last := i == len(cells)-1
			ln := 0
			if last {
				ln = 1
				pdf.SetFillColor(255, 192, 0)
			}
			pdf.CellFormat(widths[i], 6, cell, "1", ln, "C", last, 0, "")
		}
	}
}

func (d *document) renderTerms() {
	pdf := d.pdf
	d.startPage()
	d.heading(SectionTerms, "")
	pdf.Ln(5)

	for _, s := range termsSections {
		d.termsBlock(s)
	}

	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 10, "Τραπεζικοί Λογαριασμοί", "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "B", 9)
	pdf.CellFormat(40, 6, "Τράπεζα", "1", 0, "", false, 0, "")
	pdf.CellFormat(75, 6, "IBAN", "1", 0, "", false, 0, "")
	pdf.CellFormat(75, 6, "Δικαιούχος", "1", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	for _, acc := range bankAccounts {
		pdf.CellFormat(40, 6, acc[0], "1", 0, "", false, 0, "")
		pdf.CellFormat(75, 6, acc[1], "1", 0, "", false, 0, "")
		pdf.CellFormat(75, 6, acc[2], "1", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	d.termsBlock(termsDelivery)
	d.termsBlock(termsSection{Title: "Ισχύς Προσφοράς", Bulleted: true, Points: []string{
		"Η πρόταση ισχύει έως " + d.attrs.OfferValidUntil + ".",
	}})
}

func (d *document) termsBlock(s termsSection) {
	pdf := d.pdf
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 10, s.Title, "", 1, "", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	for _, p := range s.Points {
		if s.Bulleted {
			p = "•  " + p
		}
		pdf.MultiCell(0, 5, p, "", "", false)
		pdf.Ln(1)
	}
	pdf.Ln(2)
}

func (d *document) renderAcceptance() {
	pdf := d.pdf
	d.startPage()
	d.heading(SectionAcceptance, "C")
	pdf.Ln(8)

	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, 5, acceptanceInstruction, "", "C", false)
	pdf.Ln(15)

	left, _, _, _ := pdf.GetMargins()
	yStart := pdf.GetY()
	for _, label := range []string{"Από:", "Υπεύθυνος:", "Τηλέφωνο:", "Fax:", "Ημερομηνία:"} {
		pdf.SetX(left)
		pdf.SetFont(fontFamily, "B", 10)
		pdf.CellFormat(25, 7, label, "", 0, "", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(65, 7, "", "1", 1, "", false, 0, "")
	}
	yEnd := pdf.GetY()

	vendor := [][2]string{
		{"Προς:", vendorName},
		{"Τηλέφωνο:", vendorPhone},
		{"E-MAIL:", vendorEmail},
		{"Υπόψη:", vendorAttention},
	}
	for i, row := range vendor {
		pdf.SetXY(left+100, yStart+float64(i)*7)
		pdf.SetFont(fontFamily, "B", 10)
		pdf.CellFormat(25, 7, row[0], "", 0, "", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(65, 7, row[1], "", 0, "", false, 0, "")
	}

	pdf.SetY(yEnd + 10)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 10, "ΠΑΡΑΤΗΡΗΣΕΙΣ", "", 1, "", false, 0, "")
	pdf.MultiCell(0, 20, "", "1", "", false)

	pdf.SetY(pdf.GetY() + 25)
	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(0, 10, "Υπογραφή - Σφραγίδα Επιχείρησης", "", 1, "C", false, 0, "")

	pdf.SetY(pdf.GetY() + 15)
	pdf.CellFormat(40, 10, "ΑΡ. ΠΡΩΤ.:", "", 0, "R", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(50, 10, d.attrs.ProtocolNumber, "", 1, "", false, 0, "")
}

// tableHeader draws one bold bordered header row across the given widths.
func (d *document) tableHeader(widths []float64, labels []string) {
	pdf := d.pdf
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetTextColor(50, 50, 50)
	for i, label := range labels {
		ln := 0
		align := "C"
		if i == 0 {
			align = ""
		}
		if i == len(labels)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 8, label, "1", ln, align, false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// vatNote prints the right-aligned VAT exclusion note under a price table.
func (d *document) vatNote() {
	d.pdf.SetFont(fontFamily, "B", 8)
	d.pdf.CellFormat(0, 6, vatExcludedNote, "", 1, "R", false, 0, "")
}

package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TaxSolution identifies the fiscal compliance add-on chosen by the client.
type TaxSolution string

const (
	// TaxSolutionNone means no fiscal add-on was chosen yet.
	TaxSolutionNone TaxSolution = "none"
	// TaxSolutionDevice is the SAMTEC fiscal signing device.
	TaxSolutionDevice TaxSolution = "device"
	// TaxSolutionProvider is an Impact e-invoicing provider subscription tier.
	TaxSolutionProvider TaxSolution = "provider"
)

// DateLayout is the day/month/year form used everywhere a date is shown.
const DateLayout = "02/01/2006"

// DefaultValidityDays is how far out the offer expiry defaults when unstated.
const DefaultValidityDays = 30

// DefaultInstallations and DefaultUnitPrice apply when the extractor or the
// form leaves the commercial terms unset.
const DefaultInstallations = 1

// DefaultUnitPrice returns the 120.00 EUR default as a decimal.
func DefaultUnitPrice() decimal.Decimal { return decimal.NewFromInt(120) }

// DefaultValidUntil returns the default expiry date, DefaultValidityDays from now.
func DefaultValidUntil(now time.Time) string {
	return now.AddDate(0, 0, DefaultValidityDays).Format(DateLayout)
}

// OfferAttributes is the single entity of the system: everything needed to
// assemble one offer document. protocol_number is assigned exactly once by
// Materialize and never changes afterwards.
type OfferAttributes struct {
	ProtocolNumber string `json:"protocol_number"`

	ClientCompany string `json:"client_company" jsonschema_description:"Επωνυμία της εταιρείας του πελάτη"`
	ClientVATID   string `json:"client_vat_id,omitempty" jsonschema_description:"ΑΦΜ του πελάτη (προαιρετικό)"`
	ClientAddress string `json:"client_address" jsonschema_description:"Οδός και αριθμός"`
	ClientTK      string `json:"client_tk" jsonschema_description:"Ταχυδρομικός κώδικας"`
	ClientArea    string `json:"client_area" jsonschema_description:"Περιοχή"`
	ClientPhone   string `json:"client_phone,omitempty" jsonschema_description:"Τηλέφωνο επικοινωνίας (προαιρετικό)"`

	Installations   int             `json:"installations" jsonschema_description:"Αριθμός εγκαταστάσεων"`
	UnitPrice       decimal.Decimal `json:"unit_price" jsonschema_description:"Τιμή μονάδας σε ευρώ, χωρίς ΦΠΑ"`
	OfferValidUntil string          `json:"offer_valid_until" jsonschema_description:"Ημερομηνία λήξης προσφοράς σε μορφή DD/MM/YYYY"`

	IncludeTechDescription bool `json:"include_tech_description" jsonschema_description:"Αν θα συμπεριληφθεί η ενότητα Τεχνική Περιγραφή"`
	IncludeTaxSolutions    bool `json:"include_tax_solutions" jsonschema_description:"Αν θα συμπεριληφθεί η ενότητα Λύσεις Φορολογικής Σήμανσης"`

	TaxSolutionChoice TaxSolution `json:"tax_solution_choice"`
	EInvoicingPackage string      `json:"e_invoicing_package,omitempty"`

	CustomTitle   string `json:"custom_title,omitempty"`
	CustomContent string `json:"custom_content,omitempty"`

	IssueDate string `json:"issue_date"`
	CreatedBy string `json:"created_by_user,omitempty"`
}

// NewOfferAttributes returns an attribute set carrying the documented defaults.
// Client fields start blank; commercial terms start at their defaults.
func NewOfferAttributes(now time.Time) OfferAttributes {
	return OfferAttributes{
		Installations:          DefaultInstallations,
		UnitPrice:              DefaultUnitPrice(),
		OfferValidUntil:        DefaultValidUntil(now),
		IncludeTechDescription: true,
		IncludeTaxSolutions:    true,
		TaxSolutionChoice:      TaxSolutionNone,
	}
}

// Normalize trims client strings and restores defaults for blank or
// out-of-range commercial terms. It never fails.
func (a *OfferAttributes) Normalize(now time.Time) {
	a.ClientCompany = strings.TrimSpace(a.ClientCompany)
	a.ClientVATID = strings.TrimSpace(a.ClientVATID)
	a.ClientAddress = strings.TrimSpace(a.ClientAddress)
	a.ClientTK = strings.TrimSpace(a.ClientTK)
	a.ClientArea = strings.TrimSpace(a.ClientArea)
	a.ClientPhone = strings.TrimSpace(a.ClientPhone)
	a.OfferValidUntil = strings.TrimSpace(a.OfferValidUntil)

	if a.Installations < 1 {
		a.Installations = DefaultInstallations
	}
	if a.UnitPrice.IsNegative() {
		a.UnitPrice = DefaultUnitPrice()
	}
	if a.OfferValidUntil == "" {
		a.OfferValidUntil = DefaultValidUntil(now)
	}
	switch a.TaxSolutionChoice {
	case TaxSolutionDevice, TaxSolutionProvider:
	default:
		a.TaxSolutionChoice = TaxSolutionNone
	}
}

// Materialize assigns the protocol number and issue date. It must be called
// exactly once, at the moment the offer is generated.
func (a *OfferAttributes) Materialize(now time.Time) {
	a.ProtocolNumber = fmt.Sprintf("PR%d", now.Unix())
	a.IssueDate = now.Format(DateLayout)
}

// ProtocolSortKey returns the numeric suffix of the protocol number, the sort
// key for history ordering. Unparseable protocol numbers sort to 0.
func (a *OfferAttributes) ProtocolSortKey() int64 {
	n, _ := strconv.ParseInt(strings.TrimPrefix(a.ProtocolNumber, "PR"), 10, 64)
	return n
}

// Filename returns the download filename: Offer_<company>.pdf with spaces
// and punctuation stripped from the company name.
func (a *OfferAttributes) Filename() string {
	company := strings.NewReplacer(" ", "_", ".", "", ",", "").Replace(a.ClientCompany)
	return "Offer_" + company + ".pdf"
}

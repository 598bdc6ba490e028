package core

import "github.com/shopspring/decimal"

// FiscalDeviceName and FiscalDevicePrice describe the one fixed fiscal signing
// device offered alongside the software.
const FiscalDeviceName = "ΦΟΡΟΛΟΓΙΚΟΣ ΜΗΧΑΝΙΣΜΟΣ SAMTEC NEXT AI"

// FiscalDevicePrice returns the 480.00 EUR list price of the fiscal device.
func FiscalDevicePrice() decimal.Decimal { return decimal.NewFromInt(480) }

// EInvoicingTier is one row of the fixed Impact e-invoicing provider price
// table. Price feeds the grand total; the remaining columns are display-only
// and are kept exactly as printed in the document.
type EInvoicingTier struct {
	Name          string
	Price         decimal.Decimal
	PriceDisplay  string
	RetailMax     string
	WholesaleMax  string
	B2GMax        string
	RetailUnit    string
	WholesaleUnit string
	B2GUnit       string
	DiscountPrice string
}

// EInvoicingTiers is the fixed eight-tier provider price list.
var EInvoicingTiers = []EInvoicingTier{
	{"Service Pack Fuel 25K", decimal.NewFromInt(250), "250 €", "25,000", "5,000", "1,000", "0.0100 €", "0.0500 €", "0.25 €", "125 €"},
	{"Service Pack Fuel 50K", decimal.NewFromInt(450), "450 €", "50,000", "10,000", "2,000", "0.0090 €", "0.0450 €", "0.23 €", "225 €"},
	{"Service Pack Fuel 75K", decimal.NewFromInt(600), "600 €", "75,000", "15,000", "3,000", "0.0080 €", "0.0400 €", "0.20 €", "300 €"},
	{"Service Pack Fuel 100K", decimal.NewFromInt(700), "700 €", "100,000", "20,000", "4,000", "0.0070 €", "0.0350 €", "0.18 €", "350 €"},
	{"Service Pack Fuel 150K", decimal.NewFromInt(900), "900 €", "150,000", "30,000", "6,000", "0.0060 €", "0.0300 €", "0.15 €", "450 €"},
	{"Service Pack Fuel 250K", decimal.NewFromInt(1000), "1,000 €", "250,000", "50,000", "10,000", "0.0040 €", "0.0200 €", "0.10 €", "500 €"},
	{"Service Pack Fuel 500K", decimal.NewFromInt(1250), "1,250 €", "500,000", "50,000", "10,000", "0.0025 €", "0.0125 €", "0.06 €", "625 €"},
	{"Service Pack Fuel 1M", decimal.NewFromInt(2000), "2,000 €", "1,000,000", "200,000", "40,000", "0.0020 €", "0.0100 €", "0.05 €", "1,000 €"},
}

// TierByName looks up a provider tier by its exact package name.
func TierByName(name string) (EInvoicingTier, bool) {
	for _, t := range EInvoicingTiers {
		if t.Name == name {
			return t, true
		}
	}
	return EInvoicingTier{}, false
}

// SupportHourPlan is one row of the fixed support-hours price table.
type SupportHourPlan struct {
	Hours string
	Price decimal.Decimal
}

// SupportHourPlans is the fixed six-row pre-purchased support hours price list.
var SupportHourPlans = []SupportHourPlan{
	{"2 ώρες", decimal.NewFromInt(150)},
	{"5 ώρες", decimal.NewFromInt(270)},
	{"10 ώρες", decimal.NewFromInt(520)},
	{"20 ώρες", decimal.NewFromInt(940)},
	{"30 ώρες", decimal.NewFromInt(1450)},
	{"50 ώρες", decimal.NewFromInt(2250)},
}

// BaseCost is the base software package cost: installations × unit price.
func BaseCost(a *OfferAttributes) decimal.Decimal {
	return a.UnitPrice.Mul(decimal.NewFromInt(int64(a.Installations)))
}

// ExtraCost is the tax-signage add-on cost implied by the client's choice:
// the device list price, the chosen provider tier's list price (zero when the
// named package is unrecognized), or zero when nothing was chosen.
func ExtraCost(a *OfferAttributes) decimal.Decimal {
	switch a.TaxSolutionChoice {
	case TaxSolutionDevice:
		return FiscalDevicePrice()
	case TaxSolutionProvider:
		if tier, ok := TierByName(a.EInvoicingPackage); ok {
			return tier.Price
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// GrandTotal is the displayed total excluding VAT: BaseCost + ExtraCost.
// It is a pure function of installations, unit price, and the tax choice.
func GrandTotal(a *OfferAttributes) decimal.Decimal {
	return BaseCost(a).Add(ExtraCost(a))
}

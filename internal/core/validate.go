package core

import "strings"

// requiredField pairs a required attribute with its friendly Greek name and
// the predicate deciding whether it counts as missing.
type requiredField struct {
	Name    string
	Missing func(*OfferAttributes) bool
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// requiredFields is the fixed list of fields an offer must carry before it can
// be materialized into a document. Order is the declaration order reported to
// the user.
var requiredFields = []requiredField{
	{"επωνυμία εταιρείας", func(a *OfferAttributes) bool { return blank(a.ClientCompany) }},
	{"οδός", func(a *OfferAttributes) bool { return blank(a.ClientAddress) }},
	{"ταχυδρομικός κώδικας (Τ.Κ.)", func(a *OfferAttributes) bool { return blank(a.ClientTK) }},
	{"περιοχή", func(a *OfferAttributes) bool { return blank(a.ClientArea) }},
	{"αριθμός εγκαταστάσεων", func(a *OfferAttributes) bool { return a.Installations == 0 }},
	{"τιμή μονάδας", func(a *OfferAttributes) bool { return a.UnitPrice.IsZero() }},
	{"ημερομηνία λήξης προσφοράς", func(a *OfferAttributes) bool { return blank(a.OfferValidUntil) }},
}

// MissingFields returns the friendly names of required fields that are
// missing, blank after trimming, or numerically zero, in declared order.
// It is pure and total.
func MissingFields(a *OfferAttributes) []string {
	var missing []string
	for _, f := range requiredFields {
		if f.Missing(a) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

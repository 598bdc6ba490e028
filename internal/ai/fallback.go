package ai

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"offer-agent/internal/core"

	"github.com/shopspring/decimal"
)

// Fallback is the local pattern-matching strategy: a fixed ordered set of
// regular expressions applied over the raw text, each independent and
// best-effort. It never fails and never produces a conversational reply —
// fields it cannot find keep their documented defaults.
type Fallback struct {
	now func() time.Time
}

// NewFallback constructs the deterministic, dependency-free strategy.
func NewFallback() *Fallback {
	return &Fallback{now: time.Now}
}

var (
	companyRe       = regexp.MustCompile(`(?i)(?:εταιρεία|εταιρία|επιχείρηση)\s+['"]?([^'",]+)`)
	addressRe       = regexp.MustCompile(`(?i)οδ[οό]\s+([^,]+?)\s+(\d+)`)
	tkRe            = regexp.MustCompile(`(?i)τ\.?κ\.?\s*(\d{5}|\d{3}\s*\d{2})`)
	areaRe          = regexp.MustCompile(`(?i)(?:περιοχή|στην)\s+([Α-Ωα-ωΆΈΉΊΌΎΏάέήίόύώϊϋΐΰς\s]+?)(?:,|\.|$)`)
	phoneRe         = regexp.MustCompile(`(?i)(?:τηλέφωνο|τηλεφωνο|τηλ\.?)\s*(\+?\d{9,14})`)
	installationsRe = regexp.MustCompile(`(?i)(\d+)\s+(?:εγκαταστάσεις|εγκαταστάσεων|installations|inst)`)
	priceRe         = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:€|ευρώ|ευρω)`)
	validUntilRe    = regexp.MustCompile(`(?i)(?:μέχρι|έως|εώς)\s+(?:τις?\s+|της?\s+)?(\d{1,2}/\d{1,2}/(?:\d{4}|\d{2}))`)
	noTechRe        = regexp.MustCompile(`(?i)(?:μη συμπεριλάβεις|μη συμπεριλάβετε|χωρίς|βγάλτε)\s+(?:την\s+)?τεχνική περιγραφή`)
	noTaxRe         = regexp.MustCompile(`(?i)(?:μη συμπεριλάβεις|μη συμπεριλάβετε|χωρίς|βγάλτε)\s+(?:την\s+)?φορολογική σήμανση`)
)

// Attempt implements Strategy. The returned error is always nil.
func (f *Fallback) Attempt(_ context.Context, text string) (*Result, error) {
	now := f.now()
	a := core.NewOfferAttributes(now)

	if m := companyRe.FindStringSubmatch(text); m != nil {
		company := strings.NewReplacer(".", "", ",", "").Replace(strings.TrimSpace(m[1]))
		a.ClientCompany = company
	}
	if m := addressRe.FindStringSubmatch(text); m != nil {
		a.ClientAddress = strings.TrimSpace(m[1]) + " " + m[2]
	}
	if m := tkRe.FindStringSubmatch(text); m != nil {
		a.ClientTK = strings.ReplaceAll(m[1], " ", "")
	}
	if m := areaRe.FindStringSubmatch(text); m != nil {
		area := strings.TrimSpace(m[1])
		// "στην οδό ..." is an address, not an area
		if len([]rune(area)) > 2 && !strings.HasPrefix(strings.ToLower(area), "οδό") {
			a.ClientArea = area
		}
	}
	if m := phoneRe.FindStringSubmatch(text); m != nil {
		a.ClientPhone = m[1]
	}
	if m := installationsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			a.Installations = n
		}
	}
	if m := priceRe.FindStringSubmatch(text); m != nil {
		if price, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ".")); err == nil {
			a.UnitPrice = price
		}
	}
	if m := validUntilRe.FindStringSubmatch(text); m != nil {
		a.OfferValidUntil = expandTwoDigitYear(m[1], now)
	}
	if noTechRe.MatchString(text) {
		a.IncludeTechDescription = false
	}
	if noTaxRe.MatchString(text) {
		a.IncludeTaxSolutions = false
	}

	return &Result{Kind: ResultOffer, Offer: &a}, nil
}

// expandTwoDigitYear turns DD/MM/YY into DD/MM/CCYY using the current century.
func expandTwoDigitYear(date string, now time.Time) string {
	parts := strings.Split(date, "/")
	if len(parts) == 3 && len(parts[2]) == 2 {
		century := strconv.Itoa(now.Year())[:2]
		return parts[0] + "/" + parts[1] + "/" + century + parts[2]
	}
	return date
}

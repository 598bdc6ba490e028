package core_test

import (
	"reflect"
	"testing"
	"time"

	"offer-agent/internal/core"

	"github.com/shopspring/decimal"
)

func completeOffer() core.OfferAttributes {
	a := core.NewOfferAttributes(time.Now())
	a.ClientCompany = "Δοκιμαστική Εταιρεία Α.Ε."
	a.ClientAddress = "Λεωφ. Δοκιμών 123"
	a.ClientTK = "12345"
	a.ClientArea = "Αθήνα"
	return a
}

func TestMissingFields_CompleteOffer(t *testing.T) {
	a := completeOffer()
	if got := core.MissingFields(&a); got != nil {
		t.Errorf("expected no missing fields, got %v", got)
	}
}

func TestMissingFields_DeclaredOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*core.OfferAttributes)
		want   []string
	}{
		{
			name:   "missing area and zero installations",
			mutate: func(a *core.OfferAttributes) { a.ClientArea = ""; a.Installations = 0 },
			want:   []string{"περιοχή", "αριθμός εγκαταστάσεων"},
		},
		{
			name:   "blank after trimming counts as missing",
			mutate: func(a *core.OfferAttributes) { a.ClientCompany = "   " },
			want:   []string{"επωνυμία εταιρείας"},
		},
		{
			name:   "zero unit price",
			mutate: func(a *core.OfferAttributes) { a.UnitPrice = decimal.Zero },
			want:   []string{"τιμή μονάδας"},
		},
		{
			name: "everything missing reports all seven in order",
			mutate: func(a *core.OfferAttributes) {
				*a = core.OfferAttributes{}
			},
			want: []string{
				"επωνυμία εταιρείας",
				"οδός",
				"ταχυδρομικός κώδικας (Τ.Κ.)",
				"περιοχή",
				"αριθμός εγκαταστάσεων",
				"τιμή μονάδας",
				"ημερομηνία λήξης προσφοράς",
			},
		},
		{
			name:   "optional fields never reported",
			mutate: func(a *core.OfferAttributes) { a.ClientPhone = ""; a.ClientVATID = "" },
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := completeOffer()
			tt.mutate(&a)
			got := core.MissingFields(&a)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingFields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingFields_HasNoSideEffects(t *testing.T) {
	a := completeOffer()
	before := a
	_ = core.MissingFields(&a)
	if !reflect.DeepEqual(a, before) {
		t.Errorf("validator mutated its input")
	}
}

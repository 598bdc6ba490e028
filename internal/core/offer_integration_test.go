package core_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"offer-agent/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// testPool connects to DATABASE_URL or skips the test.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestOfferService_SaveGetRoundTrip(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	svc := core.NewOfferService(pool)

	now := time.Now()
	a := core.NewOfferAttributes(now)
	a.ClientCompany = fmt.Sprintf("Integration Test AE %d", now.UnixNano())
	a.ClientAddress = "Σταδίου 10"
	a.ClientTK = "10564"
	a.ClientArea = "Αθήνα"
	a.Installations = 3
	a.UnitPrice = decimal.NewFromInt(150)
	a.TaxSolutionChoice = core.TaxSolutionProvider
	a.EInvoicingPackage = "Service Pack Fuel 50K"
	a.Materialize(now)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "DELETE FROM offers WHERE protocol_number = $1", a.ProtocolNumber)
	})

	if err := svc.Save(ctx, &a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.Get(ctx, a.ProtocolNumber)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ClientCompany != a.ClientCompany {
		t.Errorf("company = %q, want %q", got.ClientCompany, a.ClientCompany)
	}
	if got.IssueDate != a.IssueDate {
		t.Errorf("issue date = %q, want %q", got.IssueDate, a.IssueDate)
	}
	if want := core.GrandTotal(&a); !core.GrandTotal(got).Equal(want) {
		t.Errorf("grand total after reload = %s, want %s", core.GrandTotal(got), want)
	}
}

func TestOfferService_SaveIsUpsert(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	svc := core.NewOfferService(pool)

	now := time.Now()
	a := core.NewOfferAttributes(now)
	a.ClientCompany = fmt.Sprintf("Upsert Test AE %d", now.UnixNano())
	a.ClientAddress = "Ερμού 1"
	a.ClientTK = "10563"
	a.ClientArea = "Αθήνα"
	a.Materialize(now)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "DELETE FROM offers WHERE protocol_number = $1", a.ProtocolNumber)
	})

	if err := svc.Save(ctx, &a); err != nil {
		t.Fatalf("first save: %v", err)
	}
	a.Installations = 7
	if err := svc.Save(ctx, &a); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := svc.Get(ctx, a.ProtocolNumber)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Installations != 7 {
		t.Errorf("installations after upsert = %d, want 7", got.Installations)
	}
}

func TestOfferService_GetUnknownProtocol(t *testing.T) {
	pool := testPool(t)
	svc := core.NewOfferService(pool)

	_, err := svc.Get(context.Background(), "PR0000000000")
	if err != core.ErrOfferNotFound {
		t.Errorf("err = %v, want ErrOfferNotFound", err)
	}
}

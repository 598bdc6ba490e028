package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrOfferNotFound is returned when no offer exists for a protocol number.
var ErrOfferNotFound = errors.New("offer not found")

// OfferService persists and retrieves offer attribute sets keyed by protocol
// number. Offers are written once per Generate action and thereafter only read.
type OfferService interface {
	// Save upserts the attribute set under its protocol number.
	Save(ctx context.Context, a *OfferAttributes) error

	// List returns all stored attribute sets, newest protocol number first
	// (numeric suffix order).
	List(ctx context.Context) ([]OfferAttributes, error)

	// Get reloads a stored attribute set from its lossless JSON copy.
	Get(ctx context.Context, protocolNumber string) (*OfferAttributes, error)
}

type offerService struct {
	pool *pgxpool.Pool
}

// NewOfferService constructs an OfferService backed by PostgreSQL.
func NewOfferService(pool *pgxpool.Pool) OfferService {
	return &offerService{pool: pool}
}

func (s *offerService) Save(ctx context.Context, a *OfferAttributes) error {
	if a.ProtocolNumber == "" {
		return errors.New("offer has no protocol number; call Materialize first")
	}

	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal offer payload: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO offers (
			protocol_number, client_company, client_vat_id, client_address,
			client_tk, client_area, client_phone, installations, unit_price,
			offer_valid_until, include_tech_description, include_tax_solutions,
			tax_solution_choice, e_invoicing_package, custom_title,
			custom_content, issue_date, created_by_user, payload
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		ON CONFLICT (protocol_number) DO UPDATE SET
			client_company = EXCLUDED.client_company,
			client_vat_id = EXCLUDED.client_vat_id,
			client_address = EXCLUDED.client_address,
			client_tk = EXCLUDED.client_tk,
			client_area = EXCLUDED.client_area,
			client_phone = EXCLUDED.client_phone,
			installations = EXCLUDED.installations,
			unit_price = EXCLUDED.unit_price,
			offer_valid_until = EXCLUDED.offer_valid_until,
			include_tech_description = EXCLUDED.include_tech_description,
			include_tax_solutions = EXCLUDED.include_tax_solutions,
			tax_solution_choice = EXCLUDED.tax_solution_choice,
			e_invoicing_package = EXCLUDED.e_invoicing_package,
			custom_title = EXCLUDED.custom_title,
			custom_content = EXCLUDED.custom_content,
			issue_date = EXCLUDED.issue_date,
			created_by_user = EXCLUDED.created_by_user,
			payload = EXCLUDED.payload`,
		a.ProtocolNumber, a.ClientCompany, a.ClientVATID, a.ClientAddress,
		a.ClientTK, a.ClientArea, a.ClientPhone, a.Installations, a.UnitPrice,
		a.OfferValidUntil, a.IncludeTechDescription, a.IncludeTaxSolutions,
		string(a.TaxSolutionChoice), a.EInvoicingPackage, a.CustomTitle,
		a.CustomContent, a.IssueDate, a.CreatedBy, payload,
	)
	if err != nil {
		return fmt.Errorf("save offer %s: %w", a.ProtocolNumber, err)
	}
	return nil
}

func (s *offerService) List(ctx context.Context) ([]OfferAttributes, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT payload
		FROM offers
		ORDER BY NULLIF(substring(protocol_number from 3), '')::bigint DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []OfferAttributes
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		var a OfferAttributes
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("decode offer payload: %w", err)
		}
		offers = append(offers, a)
	}
	return offers, rows.Err()
}

func (s *offerService) Get(ctx context.Context, protocolNumber string) (*OfferAttributes, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM offers WHERE protocol_number = $1`, protocolNumber,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load offer %s: %w", protocolNumber, err)
	}

	a := &OfferAttributes{}
	if err := json.Unmarshal(payload, a); err != nil {
		return nil, fmt.Errorf("decode offer payload %s: %w", protocolNumber, err)
	}
	return a, nil
}

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"offer-agent/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/shopspring/decimal"
)

// extractionPayload mirrors the JSON object the model is instructed to emit
// for an offer request. Every field is nullable: the model uses null for
// anything the text does not state.
type extractionPayload struct {
	ClientCompany          *string  `json:"client_company" jsonschema_description:"Επωνυμία της εταιρείας του πελάτη"`
	ClientAddress          *string  `json:"client_address" jsonschema_description:"Οδός και αριθμός"`
	ClientTK               *string  `json:"client_tk" jsonschema_description:"Ταχυδρομικός κώδικας"`
	ClientArea             *string  `json:"client_area" jsonschema_description:"Περιοχή"`
	ClientPhone            *string  `json:"client_phone" jsonschema_description:"Τηλέφωνο επικοινωνίας (προαιρετικό)"`
	Installations          *int     `json:"installations" jsonschema_description:"Αριθμός εγκαταστάσεων (integer)"`
	UnitPrice              *float64 `json:"unit_price" jsonschema_description:"Τιμή μονάδας χωρίς ΦΠΑ (float)"`
	OfferValidUntil        *string  `json:"offer_valid_until" jsonschema_description:"Ημερομηνία λήξης προσφοράς σε μορφή DD/MM/YYYY"`
	IncludeTechDescription *bool    `json:"include_tech_description" jsonschema_description:"False μόνο αν ο χρήστης ζήτησε να μη συμπεριληφθεί η Τεχνική Περιγραφή"`
	IncludeTaxSolutions    *bool    `json:"include_tax_solutions" jsonschema_description:"False μόνο αν ο χρήστης ζήτησε προσφορά χωρίς Λύσεις Φορολογικής Σήμανσης"`
}

// Extractor is the remote-model-backed strategy: it submits a fixed Greek
// instruction template plus the user's text and interprets the answer as
// either an offer-field JSON object or a conversational reply.
type Extractor struct {
	client *openai.Client
	now    func() time.Time
}

// NewExtractor constructs the remote strategy.
func NewExtractor(apiKey string) *Extractor {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Extractor{client: &client, now: time.Now}
}

const promptTemplate = `Είσαι ένας φιλικός βοηθός της S-Team που δημιουργεί προσφορές.
Αρχικά, προσπάθησε να καταλάβεις αν ο χρήστης ζητάει μια προσφορά ή κάνει μια γενική ερώτηση/χαιρετισμό.

Αν ο χρήστης ζητάει μια προσφορά, εξάγαγε όλες τις πληροφορίες από το κείμενο αιτήματος
σε ένα JSON αντικείμενο που ακολουθεί ΑΚΡΙΒΩΣ αυτό το σχήμα (λατινικοί χαρακτήρες στα keys,
null για ό,τι δεν αναφέρεται σαφώς):

%s

Αν ο χρήστης κάνει μια γενική ερώτηση ή χαιρετισμό και ΔΕΝ ζητάει προσφορά, απάντησε με ένα
φιλικό, ανθρώπινο μήνυμα, χωρίς JSON. Για παράδειγμα, αν ο χρήστης πει "γεια", απάντησε
"Γεια σας! Πώς μπορώ να σας εξυπηρετήσω σήμερα; Αν χρειάζεστε μια προσφορά, πείτε μου τα στοιχεία της εταιρείας σας."

ΣΗΜΑΝΤΙΚΟ:
1. Αν πρόκειται για αίτημα προσφοράς, επίστρεψε ΜΟΝΟ το JSON αντικείμενο, χωρίς επιπλέον κείμενο ή σχόλια.
2. Αν δεν πρόκειται για αίτημα προσφοράς, επίστρεψε ΜΟΝΟ το φιλικό κείμενο.
3. Αν δεν αναφέρεται ημερομηνία λήξης, χρησιμοποίησε την προεπιλογή %s.
4. Μην συμπεριλαμβάνεις ΦΠΑ στην τιμή, μόνο την καθαρή αριθμητική τιμή.
5. Να είσαι ευέλικτος στην αναγνώριση των ελληνικών χαρακτήρων και συντομογραφιών.

Κείμενο αιτήματος: %q`

// Attempt implements Strategy. Transport or service errors are returned as-is
// and are never retried here.
func (e *Extractor) Attempt(ctx context.Context, text string) (*Result, error) {
	schemaJSON, err := json.MarshalIndent(payloadSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal extraction schema: %w", err)
	}
	prompt := fmt.Sprintf(promptTemplate, schemaJSON, core.DefaultValidUntil(e.now()), text)

	resp, err := e.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("extraction service error: %w", err)
	}

	raw := strings.TrimSpace(resp.OutputText())
	if raw == "" {
		return nil, fmt.Errorf("extraction service returned an empty response")
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		// Not JSON: the model answered conversationally.
		return &Result{Kind: ResultReply, Reply: raw}, nil
	}

	offer := payloadToOffer(payload, e.now())
	return &Result{Kind: ResultOffer, Offer: &offer}, nil
}

// stripCodeFence removes a surrounding ```json ... ``` (or plain ```) wrapper.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") {
		return s
	}
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	return strings.TrimSpace(s)
}

// payloadToOffer normalizes the nullable payload into a full attribute set:
// null numerics get their documented defaults (installations 1, unit price
// 120.00), null booleans default to true, null strings stay blank.
func payloadToOffer(p extractionPayload, now time.Time) core.OfferAttributes {
	a := core.NewOfferAttributes(now)

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&a.ClientCompany, p.ClientCompany)
	setString(&a.ClientAddress, p.ClientAddress)
	setString(&a.ClientTK, p.ClientTK)
	setString(&a.ClientArea, p.ClientArea)
	setString(&a.ClientPhone, p.ClientPhone)
	setString(&a.OfferValidUntil, p.OfferValidUntil)

	if p.Installations != nil {
		a.Installations = *p.Installations
	}
	if p.UnitPrice != nil {
		a.UnitPrice = decimal.NewFromFloat(*p.UnitPrice)
	}
	if p.IncludeTechDescription != nil {
		a.IncludeTechDescription = *p.IncludeTechDescription
	}
	if p.IncludeTaxSolutions != nil {
		a.IncludeTaxSolutions = *p.IncludeTaxSolutions
	}

	a.Normalize(now)
	return a
}

// payloadSchema reflects the extraction payload into a JSON schema embedded in
// the instruction template.
func payloadSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var p extractionPayload
	return reflector.Reflect(p)
}

package app

import (
	"context"
	"fmt"
	"time"

	"offer-agent/internal/ai"
	"offer-agent/internal/core"
	"offer-agent/internal/mail"
	"offer-agent/internal/render"

	"github.com/jackc/pgx/v5/pgxpool"
)

type appService struct {
	pool        *pgxpool.Pool
	users       core.UserService
	offers      core.OfferService
	interpreter ai.Strategy
	mailer      *mail.Mailer
	assetDir    string
	now         func() time.Time
}

// NewAppService constructs an appService that satisfies ApplicationService.
// assetDir holds the font files and optional logo images used by the renderer.
func NewAppService(
	pool *pgxpool.Pool,
	users core.UserService,
	offers core.OfferService,
	interpreter ai.Strategy,
	mailer *mail.Mailer,
	assetDir string,
) ApplicationService {
	return &appService{
		pool:        pool,
		users:       users,
		offers:      offers,
		interpreter: interpreter,
		mailer:      mailer,
		assetDir:    assetDir,
		now:         time.Now,
	}
}

// AuthenticateUser verifies credentials and returns a session on success.
func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*SessionResult, error) {
	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return &SessionResult{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// RegisterUser creates a standard account and returns its session.
func (s *appService) RegisterUser(ctx context.Context, req RegisterUserRequest) (*SessionResult, error) {
	user, err := s.users.Create(ctx, core.NewUserParams{
		Username:  req.Username,
		Password:  req.Password,
		Role:      core.RoleStandard,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return nil, err
	}
	return &SessionResult{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// GetUser returns the profile of an account by ID.
func (s *appService) GetUser(ctx context.Context, userID int) (*UserResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserResult{User: user}, nil
}

// UpdateProfile changes name and email on an account.
func (s *appService) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) error {
	return s.users.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.Email)
}

// ChangePassword verifies the current password before storing a new one.
func (s *appService) ChangePassword(ctx context.Context, userID int, current, next string) error {
	return s.users.ChangePassword(ctx, userID, current, next)
}

// InterpretMessage runs one extraction attempt over the user's text.
func (s *appService) InterpretMessage(ctx context.Context, text string) (*ai.Result, error) {
	return s.interpreter.Attempt(ctx, text)
}

// GenerateOffer validates, materializes, renders, and persists one offer.
// Rendering happens before persistence so a failed render leaves no record.
func (s *appService) GenerateOffer(ctx context.Context, req GenerateOfferRequest) (*OfferDocumentResult, error) {
	now := s.now()
	attrs := req.Attributes
	attrs.Normalize(now)

	if missing := core.MissingFields(&attrs); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	attrs.CreatedBy = req.Username
	attrs.Materialize(now)

	pdf, err := render.Render(&attrs, s.assetDir)
	if err != nil {
		return nil, fmt.Errorf("render offer: %w", err)
	}
	if err := s.offers.Save(ctx, &attrs); err != nil {
		return nil, err
	}

	return &OfferDocumentResult{Filename: attrs.Filename(), PDF: pdf, Attributes: attrs}, nil
}

// RenderStoredOffer re-renders a persisted offer from its stored attributes.
func (s *appService) RenderStoredOffer(ctx context.Context, protocolNumber string) (*OfferDocumentResult, error) {
	attrs, err := s.offers.Get(ctx, protocolNumber)
	if err != nil {
		return nil, err
	}

	pdf, err := render.Render(attrs, s.assetDir)
	if err != nil {
		return nil, fmt.Errorf("render offer %s: %w", protocolNumber, err)
	}
	return &OfferDocumentResult{Filename: attrs.Filename(), PDF: pdf, Attributes: *attrs}, nil
}

// ListOffers returns all stored offers, newest first.
func (s *appService) ListOffers(ctx context.Context) (*OfferListResult, error) {
	offers, err := s.offers.List(ctx)
	if err != nil {
		return nil, err
	}
	return &OfferListResult{Offers: offers}, nil
}

// EmailOffer re-renders a stored offer and mails it as a PDF attachment.
func (s *appService) EmailOffer(ctx context.Context, protocolNumber, recipient string) error {
	doc, err := s.RenderStoredOffer(ctx, protocolNumber)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Προσφορά %s - %s", protocolNumber, doc.Attributes.ClientCompany)
	body := fmt.Sprintf(
		"Αγαπητέ συνεργάτη,\n\nσυνημμένα θα βρείτε την προσφορά %s για την εταιρεία %s.\n\nΜε εκτίμηση,\n%s",
		protocolNumber, doc.Attributes.ClientCompany, "Τμήμα Πωλήσεων S-Team")
	return s.mailer.Send(ctx, recipient, subject, body, doc.PDF, doc.Filename)
}

// Health reports whether the record store is reachable.
func (s *appService) Health(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

package app

import (
	"context"

	"offer-agent/internal/ai"
)

// ApplicationService is the single interface the web adapter calls. It
// decouples presentation from business logic. Implementations must contain
// no fmt.Println, no HTML, and no display logic of any kind.
type ApplicationService interface {
	// AuthenticateUser verifies credentials and returns a session on success.
	AuthenticateUser(ctx context.Context, username, password string) (*SessionResult, error)

	// RegisterUser creates a standard account and returns its session.
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*SessionResult, error)

	// GetUser returns the profile of an account by ID.
	GetUser(ctx context.Context, userID int) (*UserResult, error)

	// UpdateProfile changes name and email on an account.
	UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) error

	// ChangePassword verifies the current password before storing a new one.
	ChangePassword(ctx context.Context, userID int, current, next string) error

	// InterpretMessage turns free-form Greek text into extracted offer
	// attributes or a conversational reply.
	InterpretMessage(ctx context.Context, text string) (*ai.Result, error)

	// GenerateOffer validates, materializes, renders, and persists one offer.
	// Incomplete attribute sets fail with *ValidationError listing the missing
	// fields in display order; nothing is persisted on any failure.
	GenerateOffer(ctx context.Context, req GenerateOfferRequest) (*OfferDocumentResult, error)

	// RenderStoredOffer re-renders a persisted offer from its stored
	// attributes. The protocol number and issue date are preserved.
	RenderStoredOffer(ctx context.Context, protocolNumber string) (*OfferDocumentResult, error)

	// ListOffers returns all stored offers, newest first.
	ListOffers(ctx context.Context) (*OfferListResult, error)

	// EmailOffer re-renders a stored offer and mails it as a PDF attachment.
	EmailOffer(ctx context.Context, protocolNumber, recipient string) error

	// Health reports whether the record store is reachable.
	Health(ctx context.Context) error
}

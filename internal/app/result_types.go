package app

import (
	"fmt"
	"strings"

	"offer-agent/internal/core"
)

// SessionResult is returned by AuthenticateUser and RegisterUser.
type SessionResult struct {
	UserID   int
	Username string
	Role     string
}

// UserResult is returned by GetUser.
type UserResult struct {
	User *core.User
}

// OfferDocumentResult is a rendered offer document plus its attributes.
type OfferDocumentResult struct {
	Filename   string
	PDF        []byte
	Attributes core.OfferAttributes
}

// OfferListResult is returned by ListOffers, newest protocol first.
type OfferListResult struct {
	Offers []core.OfferAttributes
}

// ValidationError reports the required fields still missing from an attribute
// set, by their Greek display names in the fixed field order.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

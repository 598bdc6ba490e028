package app

import "offer-agent/internal/core"

// RegisterUserRequest carries the fields of a self-service registration.
// New accounts always get the standard role.
type RegisterUserRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// GenerateOfferRequest carries a completed attribute set and the acting user.
type GenerateOfferRequest struct {
	Attributes core.OfferAttributes
	Username   string
}

package core

import (
	"context"
	"errors"
	"time"
)

// Roles a user account can hold.
const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

// User represents an authenticated account. Passwords are stored only as a
// bcrypt hash and are never reversible. Accounts are never hard-deleted.
type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// Persistence error taxonomy for user operations. The web layer maps these to
// specific denial messages; none are retried.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUser      = errors.New("username or email already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
)

// NewUserParams carries the fields needed to register an account.
type NewUserParams struct {
	Username  string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Email     string
}

// UserService provides account operations backed by the record store.
type UserService interface {
	// Authenticate compares the password against the stored hash and returns
	// the account on success, ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// Create registers a new account. Returns ErrDuplicateUser on a
	// username/email uniqueness violation.
	Create(ctx context.Context, p NewUserParams) (*User, error)

	// GetByID returns a user by primary key.
	GetByID(ctx context.Context, id int) (*User, error)

	// FindByEmail returns the account holding the given email address.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdateProfile changes first/last name and email for the account.
	UpdateProfile(ctx context.Context, id int, firstName, lastName, email string) error

	// ChangePassword verifies the current password before storing a new hash.
	// Returns ErrWrongPassword if the current password does not match.
	ChangePassword(ctx context.Context, id int, current, next string) error
}

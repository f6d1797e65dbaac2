package ports

import (
	"context"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

// SignupInput carries the fields required to register a new user.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	UserID    string
	FirstName string
	LastName  string
}

// AuthService handles registration and login.
type AuthService interface {
	// Signup creates a user. Returns domain.ErrUserExists when a row with
	// the same email exists and the supplied password matches its hash.
	Signup(ctx context.Context, in SignupInput) (domain.UserView, error)
	// Authenticate verifies credentials and issues a bearer token keyed on
	// the user's email. Returns domain.ErrInvalidCredentials on any
	// mismatch, without revealing whether the email exists.
	Authenticate(ctx context.Context, email, password string) (LoginResult, error)
}

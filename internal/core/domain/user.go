package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the coarse-grained authorization tier assigned to a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AdminDomain is the email suffix that grants the ADMIN role at signup.
const AdminDomain = "@djanguicore.com"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ParseRole converts a string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(s)); r {
	case RoleUser, RoleAdmin:
		return r, nil
	}
	return "", errors.New("unknown role: " + s)
}

// RoleForEmail applies the signup assignment rule: addresses on the admin
// domain become ADMIN, everyone else USER.
func RoleForEmail(email string) Role {
	if strings.HasSuffix(email, AdminDomain) {
		return RoleAdmin
	}
	return RoleUser
}

// User models an authenticated identity. The email doubles as the username
// and is the subject embedded in issued tokens. Multiple rows may share an
// email; login picks the row whose hash verifies.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserView is the external-facing projection of a User, stripped of the
// password hash.
type UserView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// View projects the user for API responses.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

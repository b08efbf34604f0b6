package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies the authorization level of a user.
type Role string

// Known user roles. There is no demotion path: the only observed role
// transition is RoleUser -> RoleAdmin.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered user of the Paw Haven platform.
// A user record is created implicitly the first time a session is issued
// for a new email; it is never deleted.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsBanned  bool      `json:"is_banned"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User with the given email, defaulting to RoleUser.
// It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewUser(email string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      RoleUser,
		IsBanned:  false,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrInvalidEmail)
	}

	if !validEmailFormat(u.Email) {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}

	if !u.Role.Valid() {
		return NewValidationError("role", "must be user or admin", ErrInvalidRole)
	}

	return nil
}

// validEmailFormat performs basic structural validation of an email address:
// a non-empty local part, an @, and a domain containing an inner dot.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

package domain

import (
	"errors"
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role represents a user's permission level on the platform.
type Role string

// Possible role values
const (
	RoleParticipant Role = "participant"
	RoleOrganizer   Role = "organizer"
)

// Common validation errors for User
var (
	ErrEmptyEmail  = errors.New("email cannot be empty")
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrInvalidRole = errors.New("invalid role")
)

// User represents a person who has signed in at least once. Users are keyed
// by email: sign-in is external, so there is no stored credential, and the
// first sign-in creates the record idempotently.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string        `bson:"email"         json:"email"`
	Name      string        `bson:"name"          json:"name"`
	Role      Role          `bson:"role"          json:"role"`
	PhotoURL  string        `bson:"photoURL"      json:"photoURL,omitempty"`
	Phone     string        `bson:"phone"         json:"phone,omitempty"`
	Address   string        `bson:"address"       json:"address,omitempty"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}

// NewUser creates a new User with the given email and name. The role
// defaults to participant; organizers are promoted out of band.
// Returns an error if validation fails.
func NewUser(email, name string) (*User, error) {
	user := &User{
		Email:     email,
		Name:      name,
		Role:      RoleParticipant,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if !isValidRole(u.Role) {
		return ErrInvalidRole
	}

	return nil
}

// IsOrganizer reports whether the user holds the organizer role.
func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer
}

// UserPatch lists the mutable profile fields for a partial update.
// Email and role are not client-mutable.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photoURL,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.PhotoURL == nil && p.Phone == nil && p.Address == nil
}

// Validate checks the populated patch fields.
func (p UserPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrEmptyName
	}

	return nil
}

func isValidRole(r Role) bool {
	switch r {
	case RoleParticipant, RoleOrganizer:
		return true
	default:
		return false
	}
}

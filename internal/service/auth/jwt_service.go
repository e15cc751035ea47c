// Package auth provides the identity token codec: issuing and verifying
// the signed, time-limited identity assertions that gate every protected
// route.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT identity tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT embedding the given identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, identity Identity) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims if the token is valid, or an error if
	// validation fails (expired, invalid signature, malformed, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Identity is the payload asserted at sign-in. Email is the identity key;
// the display name is carried along for convenience.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Claims represents the decoded contents of a verified identity token.
type Claims struct {
	// Email identifies the token holder.
	Email string `json:"email"`

	// Name is the holder's display name, if one was asserted at issuance.
	Name string `json:"name,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

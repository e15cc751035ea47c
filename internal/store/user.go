package store

import (
	"context"

	"github.com/medcamphq/medcamp-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Users are keyed by email address.
type UserStore interface {
	// Create saves a new user to the store and fills in its generated ID.
	// Returns ErrEmailExists if a user with the same email already exists;
	// callers rely on this for idempotent first-sign-in creation.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies the non-nil fields of the patch to the stored user.
	// Returns ErrUserNotFound if the user does not exist and ErrEmptyPatch
	// if the patch carries no fields.
	Update(ctx context.Context, email string, patch domain.UserPatch) (*domain.User, error)
}

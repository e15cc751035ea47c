package store

import (
	"context"

	"github.com/medcamphq/medcamp-api/internal/domain"
)

// RegistrationStore defines the interface for registration data persistence.
type RegistrationStore interface {
	// Create saves a new registration to the store and fills in its
	// generated ID. Duplicate (camp, participant) pairs are permitted;
	// re-registration after cancellation is a supported flow.
	Create(ctx context.Context, reg *domain.Registration) error

	// GetByID retrieves a registration by its identifier.
	// Returns ErrRegistrationNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Registration, error)

	// ListByParticipant returns all registrations held by the given
	// participant email.
	ListByParticipant(ctx context.Context, email string) ([]*domain.Registration, error)

	// ListAll returns every registration in the store.
	ListAll(ctx context.Context) ([]*domain.Registration, error)

	// Update applies the non-nil fields of the patch to the stored
	// registration. Returns ErrRegistrationNotFound if it does not exist
	// and ErrEmptyPatch if the patch carries no fields.
	Update(ctx context.Context, id string, patch domain.RegistrationPatch) (*domain.Registration, error)

	// Delete removes a registration by its identifier, cancelling it.
	// Returns ErrRegistrationNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

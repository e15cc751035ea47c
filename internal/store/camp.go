package store

import (
	"context"

	"github.com/medcamphq/medcamp-api/internal/domain"
)

// CampStore defines the interface for camp data persistence.
type CampStore interface {
	// Create saves a new camp to the store and fills in its generated ID.
	// The participant count is persisted as zero regardless of input.
	// Returns validation errors from the domain Camp if data is invalid.
	Create(ctx context.Context, camp *domain.Camp) error

	// GetByID retrieves a camp by its identifier.
	// Returns ErrCampNotFound if the camp does not exist.
	GetByID(ctx context.Context, id string) (*domain.Camp, error)

	// List returns every camp in the store, unfiltered and unpaginated.
	// Fine at the platform's current scale; pagination is a known gap.
	List(ctx context.Context) ([]*domain.Camp, error)

	// Update applies the non-nil fields of the patch to the stored camp.
	// Returns ErrCampNotFound if the camp does not exist and ErrEmptyPatch
	// if the patch carries no fields.
	Update(ctx context.Context, id string, patch domain.CampPatch) (*domain.Camp, error)

	// Delete removes a camp from the store by its identifier.
	// Returns ErrCampNotFound if the camp does not exist.
	Delete(ctx context.Context, id string) error

	// IncrementParticipantCount atomically adds one to the camp's
	// participant count at the store, so concurrent registrations can
	// never undercount. Returns ErrCampNotFound if the camp does not exist.
	IncrementParticipantCount(ctx context.Context, id string) (*domain.Camp, error)
}

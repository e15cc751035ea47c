package store

import (
	"context"

	"github.com/medcamphq/medcamp-api/internal/domain"
)

// PaymentStore defines the interface for payment data persistence.
// Payment records are immutable: there is no update or delete surface.
type PaymentStore interface {
	// Create saves a new payment record and fills in its generated ID.
	// Returns validation errors from the domain Payment if data is invalid.
	Create(ctx context.Context, payment *domain.Payment) error

	// ListByParticipant returns all payment records for the given
	// participant email.
	ListByParticipant(ctx context.Context, email string) ([]*domain.Payment, error)
}

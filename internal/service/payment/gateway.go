// Package payment implements the payment workflow: requesting a card
// authorization from the external gateway and recording settled payments.
package payment

import "context"

// IntentStatus is the gateway's view of a payment intent's lifecycle.
type IntentStatus string

// Gateway intent statuses the service cares about. The gateway has more
// intermediate states; everything that isn't succeeded is treated as
// unsettled.
const (
	IntentStatusSucceeded IntentStatus = "succeeded"
)

// Intent is the gateway's handle for an authorized-but-unconfirmed payment.
// The client secret goes back to the browser to complete the card flow;
// the ID is what the server later verifies against.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway abstracts the external payment provider. Implementations live in
// internal/platform; tests use a mock.
type Gateway interface {
	// CreateIntent requests a card-payment authorization for the given
	// amount in the smallest currency unit.
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error)

	// RetrieveIntent fetches the current status of a previously created
	// intent by its gateway reference.
	RetrieveIntent(ctx context.Context, intentID string) (IntentStatus, error)
}

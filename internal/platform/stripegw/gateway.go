// Package stripegw implements the payment gateway interface over Stripe's
// PaymentIntents API.
package stripegw

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/medcamphq/medcamp-api/internal/config"
	"github.com/medcamphq/medcamp-api/internal/service/payment"
)

// Gateway is a payment.Gateway backed by Stripe.
type Gateway struct {
	api *client.API
}

// Ensure Gateway implements payment.Gateway interface
var _ payment.Gateway = (*Gateway)(nil)

// New creates a Stripe-backed gateway with its own API client, so the
// secret key is never process-global state.
func New(cfg config.PaymentConfig) *Gateway {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)

	return &Gateway{api: api}
}

// CreateIntent requests a card PaymentIntent for the given amount in the
// smallest currency unit.
func (g *Gateway) CreateIntent(
	ctx context.Context,
	amountCents int64,
	currency string,
) (*payment.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent creation failed: %w", err)
	}

	return &payment.Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// RetrieveIntent fetches a PaymentIntent's current status by its ID.
func (g *Gateway) RetrieveIntent(ctx context.Context, intentID string) (payment.IntentStatus, error) {
	intent, err := g.api.PaymentIntents.Get(intentID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return "", fmt.Errorf("stripe payment intent lookup failed: %w", err)
	}

	return payment.IntentStatus(intent.Status), nil
}

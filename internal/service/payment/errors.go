package payment

import "errors"

// Common payment service errors
var (
	// ErrGateway indicates the call to the external payment provider
	// failed. The wrapped error carries provider detail for logs only.
	ErrGateway = errors.New("payment gateway call failed")

	// ErrInvalidAmount indicates a requested fee amount that cannot be
	// charged (zero or negative).
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrPaymentNotSettled indicates the client reported a payment that
	// the gateway does not show as succeeded. The record is not persisted.
	ErrPaymentNotSettled = errors.New("payment not settled at gateway")
)

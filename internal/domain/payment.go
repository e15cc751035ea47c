package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Common validation errors for Payment
var (
	ErrEmptyPaymentCamp    = errors.New("payment camp ID cannot be empty")
	ErrEmptyPaymentEmail   = errors.New("payment participant email cannot be empty")
	ErrEmptyTransactionRef = errors.New("payment transaction reference cannot be empty")
	ErrNonPositiveAmount   = errors.New("payment amount must be positive")
)

// Payment records a settled camp fee. A record is only created after the
// gateway confirms the transaction succeeded, and it is immutable once
// inserted.
type Payment struct {
	ID               bson.ObjectID `bson:"_id,omitempty"    json:"_id,omitempty"`
	CampID           bson.ObjectID `bson:"campId"           json:"campId"`
	CampName         string        `bson:"campName"         json:"campName"`
	ParticipantEmail string        `bson:"participantEmail" json:"participantEmail"`
	Amount           float64       `bson:"amount"           json:"amount"`
	TransactionID    string        `bson:"transactionId"    json:"transactionId"`
	CreatedAt        time.Time     `bson:"created_at"       json:"created_at"`
}

// NewPayment creates a Payment record for a confirmed gateway transaction.
// Returns an error if validation fails.
func NewPayment(
	campID bson.ObjectID,
	campName, participantEmail string,
	amount float64,
	transactionID string,
) (*Payment, error) {
	payment := &Payment{
		CampID:           campID,
		CampName:         campName,
		ParticipantEmail: participantEmail,
		Amount:           amount,
		TransactionID:    transactionID,
		CreatedAt:        time.Now().UTC(),
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	return payment, nil
}

// Validate checks if the Payment has valid data.
// Returns an error if any field fails validation.
func (p *Payment) Validate() error {
	if p.CampID.IsZero() {
		return ErrEmptyPaymentCamp
	}

	if p.ParticipantEmail == "" {
		return ErrEmptyPaymentEmail
	}

	if p.Amount <= 0 {
		return ErrNonPositiveAmount
	}

	if p.TransactionID == "" {
		return ErrEmptyTransactionRef
	}

	return nil
}

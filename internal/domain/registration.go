package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PaymentState represents whether a registration's fee has been settled.
type PaymentState string

// ConfirmationState represents whether an organizer has confirmed a
// registration.
type ConfirmationState string

// Possible registration status values
const (
	PaymentUnpaid PaymentState = "unpaid"
	PaymentPaid   PaymentState = "paid"

	ConfirmationPending   ConfirmationState = "pending"
	ConfirmationConfirmed ConfirmationState = "confirmed"
)

// Common validation errors for Registration
var (
	ErrEmptyRegistrationCamp  = errors.New("registration camp ID cannot be empty")
	ErrEmptyRegistrationEmail = errors.New("registration participant email cannot be empty")
	ErrInvalidPaymentState    = errors.New("invalid payment status")
	ErrInvalidConfirmation    = errors.New("invalid confirmation status")
)

// Registration ties one participant to one camp. The camp name and fees are
// denormalized at registration time so listings render without a join.
// Nothing prevents a participant from registering twice for the same camp;
// re-registration after cancellation is a supported flow.
type Registration struct {
	ID                 bson.ObjectID     `bson:"_id,omitempty"      json:"_id,omitempty"`
	CampID             bson.ObjectID     `bson:"campId"             json:"campId"`
	CampName           string            `bson:"campName"           json:"campName"`
	Fees               float64           `bson:"fees"               json:"fees"`
	ParticipantEmail   string            `bson:"participantEmail"   json:"participantEmail"`
	ParticipantName    string            `bson:"participantName"    json:"participantName"`
	PaymentStatus      PaymentState      `bson:"paymentStatus"      json:"paymentStatus"`
	ConfirmationStatus ConfirmationState `bson:"confirmationStatus" json:"confirmationStatus"`
	CreatedAt          time.Time         `bson:"created_at"         json:"created_at"`
	UpdatedAt          time.Time         `bson:"updated_at"         json:"updated_at"`
}

// NewRegistration creates a Registration for the given camp and participant,
// snapshotting the camp's name and fees. Status fields start unpaid/pending.
// Returns an error if validation fails.
func NewRegistration(camp *Camp, participantEmail, participantName string) (*Registration, error) {
	reg := &Registration{
		CampID:             camp.ID,
		CampName:           camp.Name,
		Fees:               camp.Fees,
		ParticipantEmail:   participantEmail,
		ParticipantName:    participantName,
		PaymentStatus:      PaymentUnpaid,
		ConfirmationStatus: ConfirmationPending,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	return reg, nil
}

// Validate checks if the Registration has valid data.
// Returns an error if any field fails validation.
func (r *Registration) Validate() error {
	if r.CampID.IsZero() {
		return ErrEmptyRegistrationCamp
	}

	if r.ParticipantEmail == "" {
		return ErrEmptyRegistrationEmail
	}

	if !isValidPaymentState(r.PaymentStatus) {
		return ErrInvalidPaymentState
	}

	if !isValidConfirmationState(r.ConfirmationStatus) {
		return ErrInvalidConfirmation
	}

	return nil
}

// RegistrationPatch lists the mutable Registration fields for a partial
// update. Camp and participant references are fixed for the record's life.
type RegistrationPatch struct {
	PaymentStatus      *PaymentState      `json:"paymentStatus,omitempty"`
	ConfirmationStatus *ConfirmationState `json:"confirmationStatus,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p RegistrationPatch) IsEmpty() bool {
	return p.PaymentStatus == nil && p.ConfirmationStatus == nil
}

// Validate checks the populated patch fields.
func (p RegistrationPatch) Validate() error {
	if p.PaymentStatus != nil && !isValidPaymentState(*p.PaymentStatus) {
		return ErrInvalidPaymentState
	}

	if p.ConfirmationStatus != nil && !isValidConfirmationState(*p.ConfirmationStatus) {
		return ErrInvalidConfirmation
	}

	return nil
}

func isValidPaymentState(s PaymentState) bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

func isValidConfirmationState(s ConfirmationState) bool {
	return s == ConfirmationPending || s == ConfirmationConfirmed
}

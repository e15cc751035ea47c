package api

import "time"

// Common request/response structures

// TokenRequest defines the payload for the token issue endpoint. The
// sign-in itself happens upstream; the backend mints a session token for
// the asserted identity.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"omitempty,max=200"`
}

// TokenResponse defines the successful response for the token issue
// endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// InsertResult mirrors the MongoDB driver's insert acknowledgement that
// existing clients read the new document ID from.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

// InsertResultWithMessage is the idempotent-create response: the duplicate
// path answers with a message and a null insertedId instead of an error.
type InsertResultWithMessage struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// UpdateResult mirrors the MongoDB driver's update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the MongoDB driver's delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// OrganizerResponse answers the role probe for a given email.
type OrganizerResponse struct {
	Organizer bool `json:"organizer"`
}

// CreateCampRequest defines the payload for creating a camp. Clients
// historically send a participantCount; it is accepted and ignored, camps
// always start at zero.
type CreateCampRequest struct {
	CampName               string    `json:"campName"               validate:"required,min=1,max=200"`
	Description            string    `json:"description"            validate:"omitempty,max=5000"`
	Fees                   float64   `json:"fees"                   validate:"gte=0"`
	DateTime               time.Time `json:"dateTime"               validate:"required"`
	Location               string    `json:"location"               validate:"required,min=1,max=500"`
	HealthcareProfessional string    `json:"healthcareProfessional" validate:"required,min=1,max=200"`
	ParticipantCount       int64     `json:"participantCount"`
}

// CreateUserRequest defines the payload for the idempotent user upsert.
type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,min=1,max=200"`
	PhotoURL string `json:"photoURL" validate:"omitempty,max=2000"`
}

// CreateRegistrationRequest defines the payload for registering a
// participant for a camp. Camp name and fees are snapshotted server-side
// from the camp record, never trusted from the client.
type CreateRegistrationRequest struct {
	CampID           string `json:"campId"           validate:"required,len=24,hexadecimal"`
	ParticipantEmail string `json:"participantEmail" validate:"required,email"`
	ParticipantName  string `json:"participantName"  validate:"omitempty,max=200"`
}

// PaymentIntentRequest defines the payload for requesting a card
// authorization for a camp fee.
type PaymentIntentRequest struct {
	Fees float64 `json:"fees" validate:"required,gt=0"`
}

// PaymentIntentResponse carries the secret the browser needs to finish the
// card flow.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest defines the payload for reporting a completed
// payment. The transaction is verified with the gateway before anything is
// written.
type RecordPaymentRequest struct {
	CampID           string  `json:"campId"           validate:"required,len=24,hexadecimal"`
	CampName         string  `json:"campName"         validate:"required,min=1,max=200"`
	ParticipantEmail string  `json:"participantEmail" validate:"required,email"`
	Amount           float64 `json:"amount"           validate:"required,gt=0"`
	TransactionID    string  `json:"transactionId"    validate:"required,min=1,max=200"`
	RegistrationID   string  `json:"registrationId"   validate:"omitempty,len=24,hexadecimal"`
}

// CreateFeedbackRequest defines the payload for leaving camp feedback.
type CreateFeedbackRequest struct {
	CampID           string `json:"campId"           validate:"required,len=24,hexadecimal"`
	ParticipantEmail string `json:"participantEmail" validate:"required,email"`
	ParticipantName  string `json:"participantName"  validate:"omitempty,max=200"`
	Rating           int    `json:"rating"           validate:"required,min=1,max=5"`
	Comment          string `json:"comment"          validate:"omitempty,max=5000"`
}

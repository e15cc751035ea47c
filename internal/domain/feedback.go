package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Common validation errors for Feedback
var (
	ErrEmptyFeedbackCamp  = errors.New("feedback camp ID cannot be empty")
	ErrEmptyFeedbackEmail = errors.New("feedback participant email cannot be empty")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)

// Feedback is a participant's rating and comment for a camp they attended.
// Feedback is append-only: there is no edit or delete surface.
type Feedback struct {
	ID               bson.ObjectID `bson:"_id,omitempty"    json:"_id,omitempty"`
	CampID           bson.ObjectID `bson:"campId"           json:"campId"`
	ParticipantEmail string        `bson:"participantEmail" json:"participantEmail"`
	ParticipantName  string        `bson:"participantName"  json:"participantName"`
	Rating           int           `bson:"rating"           json:"rating"`
	Comment          string        `bson:"comment"          json:"comment"`
	CreatedAt        time.Time     `bson:"created_at"       json:"created_at"`
}

// NewFeedback creates a Feedback record for a camp.
// Returns an error if validation fails.
func NewFeedback(
	campID bson.ObjectID,
	participantEmail, participantName string,
	rating int,
	comment string,
) (*Feedback, error) {
	feedback := &Feedback{
		CampID:           campID,
		ParticipantEmail: participantEmail,
		ParticipantName:  participantName,
		Rating:           rating,
		Comment:          comment,
		CreatedAt:        time.Now().UTC(),
	}

	if err := feedback.Validate(); err != nil {
		return nil, err
	}

	return feedback, nil
}

// Validate checks if the Feedback has valid data.
// Returns an error if any field fails validation.
func (f *Feedback) Validate() error {
	if f.CampID.IsZero() {
		return ErrEmptyFeedbackCamp
	}

	if f.ParticipantEmail == "" {
		return ErrEmptyFeedbackEmail
	}

	if f.Rating < 1 || f.Rating > 5 {
		return ErrInvalidRating
	}

	return nil
}

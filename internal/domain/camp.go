package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Common validation errors for Camp
var (
	ErrEmptyCampName            = errors.New("camp name cannot be empty")
	ErrEmptyCampLocation        = errors.New("camp location cannot be empty")
	ErrEmptyCampProfessional    = errors.New("healthcare professional name cannot be empty")
	ErrNegativeCampFees         = errors.New("camp fees cannot be negative")
	ErrZeroCampDateTime         = errors.New("camp date/time must be set")
	ErrNegativeParticipantCount = errors.New("participant count cannot be negative")
)

// Camp represents a medical outreach event that participants can register
// for. The participant count only ever grows, and only through the store's
// atomic increment.
type Camp struct {
	ID                     bson.ObjectID `bson:"_id,omitempty"      json:"_id,omitempty"`
	Name                   string        `bson:"campName"           json:"campName"`
	Description            string        `bson:"description"        json:"description"`
	Fees                   float64       `bson:"fees"               json:"fees"`
	DateTime               time.Time     `bson:"dateTime"           json:"dateTime"`
	Location               string        `bson:"location"           json:"location"`
	HealthcareProfessional string        `bson:"healthcareProfessional" json:"healthcareProfessional"`
	ParticipantCount       int64         `bson:"participantCount"   json:"participantCount"`
	CreatedAt              time.Time     `bson:"created_at"         json:"created_at"`
	UpdatedAt              time.Time     `bson:"updated_at"         json:"updated_at"`
}

// NewCamp creates a new Camp with the given details. The participant count
// always starts at zero regardless of what a caller supplies, and the
// creation/update timestamps are set to now.
// Returns an error if validation fails.
func NewCamp(
	name, description string,
	fees float64,
	dateTime time.Time,
	location, healthcareProfessional string,
) (*Camp, error) {
	camp := &Camp{
		Name:                   name,
		Description:            description,
		Fees:                   fees,
		DateTime:               dateTime,
		Location:               location,
		HealthcareProfessional: healthcareProfessional,
		ParticipantCount:       0,
		CreatedAt:              time.Now().UTC(),
		UpdatedAt:              time.Now().UTC(),
	}

	if err := camp.Validate(); err != nil {
		return nil, err
	}

	return camp, nil
}

// Validate checks if the Camp has valid data.
// Returns an error if any field fails validation.
func (c *Camp) Validate() error {
	if c.Name == "" {
		return ErrEmptyCampName
	}

	if c.Fees < 0 {
		return ErrNegativeCampFees
	}

	if c.DateTime.IsZero() {
		return ErrZeroCampDateTime
	}

	if c.Location == "" {
		return ErrEmptyCampLocation
	}

	if c.HealthcareProfessional == "" {
		return ErrEmptyCampProfessional
	}

	if c.ParticipantCount < 0 {
		return ErrNegativeParticipantCount
	}

	return nil
}

// CampPatch lists the mutable Camp fields for a partial update. Only
// non-nil fields are applied; the participant count is deliberately
// absent because it changes solely through the atomic increment.
type CampPatch struct {
	Name                   *string    `json:"campName,omitempty"`
	Description            *string    `json:"description,omitempty"`
	Fees                   *float64   `json:"fees,omitempty"`
	DateTime               *time.Time `json:"dateTime,omitempty"`
	Location               *string    `json:"location,omitempty"`
	HealthcareProfessional *string    `json:"healthcareProfessional,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p CampPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Fees == nil &&
		p.DateTime == nil && p.Location == nil && p.HealthcareProfessional == nil
}

// Validate checks the populated patch fields.
func (p CampPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrEmptyCampName
	}

	if p.Fees != nil && *p.Fees < 0 {
		return ErrNegativeCampFees
	}

	if p.DateTime != nil && p.DateTime.IsZero() {
		return ErrZeroCampDateTime
	}

	if p.Location != nil && *p.Location == "" {
		return ErrEmptyCampLocation
	}

	if p.HealthcareProfessional != nil && *p.HealthcareProfessional == "" {
		return ErrEmptyCampProfessional
	}

	return nil
}

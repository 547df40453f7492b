package models

import "time"

// Request status values. Requests are moderated by an admin only.
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

// RequestDateInfo carries either a custom range or a predefined duration.
type RequestDateInfo struct {
	Type  string     `bson:"type" json:"type"` // "Custom Range" or "Duration"
	Start *time.Time `bson:"start,omitempty" json:"start,omitempty"`
	End   *time.Time `bson:"end,omitempty" json:"end,omitempty"`
	Value string     `bson:"value,omitempty" json:"value,omitempty"`
}

// Request is a provider-unspecific "I need a sitter" lead submitted by a
// visitor and reviewed by an administrator.
type Request struct {
	ID            string          `bson:"id" json:"id"`
	FullName      string          `bson:"fullName" json:"fullName"`
	Email         string          `bson:"email" json:"email"`
	ServiceType   string          `bson:"serviceType" json:"serviceType"`
	PetType       string          `bson:"petType,omitempty" json:"petType,omitempty"`
	PetSize       string          `bson:"petSize,omitempty" json:"petSize,omitempty"`
	Area          string          `bson:"area,omitempty" json:"area,omitempty"`
	DateInfo      RequestDateInfo `bson:"dateInfo" json:"dateInfo"`
	Notes         string          `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string          `bson:"status" json:"status"`
	AcceptedTerms bool            `bson:"acceptedTerms" json:"acceptedTerms"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
}

package models

import "time"

// Booking status values. Transitions only move forward:
// Pending -> Accepted | Rejected, Accepted -> Completed.
const (
	BookingPending   = "Pending"
	BookingAccepted  = "Accepted"
	BookingRejected  = "Rejected"
	BookingCompleted = "Completed"
)

// Booking methods. "custom" bookings carry a from/to date range; "quick"
// bookings carry a single date plus a duration and start time.
const (
	MethodCustom = "custom"
	MethodQuick  = "quick"
)

// Booking is a reservation request from a pet owner against a provider.
// Two historical date shapes coexist in stored documents; readers must go
// through DateSpec() rather than touching the date fields directly.
type Booking struct {
	ID            string     `bson:"id" json:"id"`
	UserID        string     `bson:"userId" json:"userId"`
	UserName      string     `bson:"userName,omitempty" json:"userName,omitempty"`
	UserEmail     string     `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserContact   string     `bson:"userContact,omitempty" json:"userContact,omitempty"`
	ProviderID    string     `bson:"providerId" json:"providerId"`
	ProviderName  string     `bson:"providerName,omitempty" json:"providerName,omitempty"`
	ServiceType   string     `bson:"serviceType" json:"serviceType"`
	PetType       string     `bson:"petType,omitempty" json:"petType,omitempty"`
	PetSize       string     `bson:"petSize,omitempty" json:"petSize,omitempty"`
	PetNumber     int        `bson:"petNumber,omitempty" json:"petNumber,omitempty"`
	Method        string     `bson:"bookingMethod,omitempty" json:"bookingMethod,omitempty"`
	FromDate      *time.Time `bson:"fromDate,omitempty" json:"fromDate,omitempty"`
	ToDate        *time.Time `bson:"toDate,omitempty" json:"toDate,omitempty"`
	Date          *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	ServiceLength string     `bson:"serviceLength,omitempty" json:"serviceLength,omitempty"`
	Time          string     `bson:"time,omitempty" json:"time,omitempty"`
	Notes         string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string     `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}

// BookingView is a Booking annotated with the derived flags the dashboard
// needs. Both are computed per read, never stored.
type BookingView struct {
	Booking
	Completable    bool `json:"completable"`
	ReviewEligible bool `json:"reviewEligible"`
}

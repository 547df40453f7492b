package models

import "time"

// Review is the one-time rating a user leaves after a completed booking.
// At most one review exists per booking; reviews are immutable once written.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	UserID     string    `bson:"userId" json:"userId"`
	UserName   string    `bson:"userName,omitempty" json:"userName,omitempty"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment" json:"comment"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

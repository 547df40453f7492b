package models

import "time"

// Chat is the per-booking conversation head. Users holds the two party IDs.
type Chat struct {
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Users         []string  `bson:"users" json:"users"`
	LastMessage   string    `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastTimestamp time.Time `bson:"lastTimestamp,omitempty" json:"lastTimestamp,omitempty"`
}

// ChatMessage is an append-only message scoped under a booking's chat.
// ReadBy accumulates reader IDs; messages are never edited or deleted.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"bookingId" json:"bookingId"`
	SenderID  string    `bson:"senderId" json:"senderId"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	ReadBy    []string  `bson:"readBy" json:"readBy"`
}

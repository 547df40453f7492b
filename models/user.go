package models

import "time"

// Roles assignable at signup. A user's role is fixed at creation; the only
// later mutation is attaching a provider profile link for sitters.
const (
	RoleUser   = "user"
	RoleSitter = "sitter"
	RoleAdmin  = "admin"
)

// User represents a platform account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"`
	ProviderID   string    `bson:"providerId,omitempty" json:"providerId,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

package models

import "time"

// Blog is an admin-authored article shown on the public site.
type Blog struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Excerpt   string    `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content   string    `bson:"content" json:"content"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	Date      string    `bson:"date,omitempty" json:"date,omitempty"` // display date, "YYYY-MM-DD"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

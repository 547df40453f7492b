package models

import "time"

// Catalogue enums. The area list is the fixed set of supported regions;
// providers outside these are not accepted.
var (
	ServiceOptions = []string{"Dog Walking", "Pet Sitting", "Pet Boarding", "Plant Watering"}
	PetTypeOptions = []string{"Dog", "Cat", "Bird", "Rabbit", "Other"}
	PetSizeOptions = []string{"Small", "Medium", "Large"}
	AreaOptions    = []string{"Nicosia", "Larnaca", "Limassol", "Paphos", "Famagusta"}
	Weekdays       = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

// Provider is a sitter listing. Approved gates visibility in public browse;
// only an admin toggles it. AverageRating and ReviewsCount are derived from
// the Reviews collection on read, never written incrementally.
type Provider struct {
	ID                string      `bson:"id" json:"id"`
	UserID            string      `bson:"userId" json:"userId"`
	Name              string      `bson:"name" json:"name"`
	Email             string      `bson:"email,omitempty" json:"email,omitempty"`
	Phone             string      `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio               string      `bson:"bio,omitempty" json:"bio,omitempty"`
	ServiceTypes      []string    `bson:"serviceTypes" json:"serviceTypes"`
	PetTypes          []string    `bson:"petTypes" json:"petTypes"`
	PetSize           string      `bson:"petSize,omitempty" json:"petSize,omitempty"`
	Area              string      `bson:"area" json:"area"`
	PlantWatering     bool        `bson:"plantWatering" json:"plantWatering"`
	AvailabilityDays  []string    `bson:"availabilityDays,omitempty" json:"availabilityDays,omitempty"`
	AvailabilityDates []time.Time `bson:"availabilityDates,omitempty" json:"availabilityDates,omitempty"`
	Rate              string      `bson:"rate,omitempty" json:"rate,omitempty"`
	PhotoURL          string      `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Approved          bool        `bson:"approved" json:"approved"`
	AverageRating     float64     `bson:"-" json:"averageRating"`
	ReviewsCount      int         `bson:"-" json:"reviewsCount"`
	CreatedAt         time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// NextAvailableDate returns the earliest specific availability date, or the
// zero time when none are set.
func (p *Provider) NextAvailableDate() time.Time {
	var next time.Time
	for _, d := range p.AvailabilityDates {
		if next.IsZero() || d.Before(next) {
			next = d
		}
	}
	return next
}

// ProviderFilter is the conjunctive browse predicate: every non-empty field
// must match. String comparisons are case-insensitive.
type ProviderFilter struct {
	Search      string     `form:"search" json:"search"`
	Area        string     `form:"area" json:"area"`
	ServiceType string     `form:"serviceType" json:"serviceType"`
	PetType     string     `form:"petType" json:"petType"`
	PetSize     string     `form:"petSize" json:"petSize"`
	Date        *time.Time `form:"date" json:"date" time_format:"2006-01-02"`
}

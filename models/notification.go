package models

import "time"

// ReminderPayload is the asynq task body for a completion reminder, fired at
// the booking's service-window end.
type ReminderPayload struct {
	BookingID   string    `json:"bookingId"`
	ProviderID  string    `json:"providerId"`
	ServiceType string    `json:"serviceType"`
	WindowEnd   time.Time `json:"windowEnd"`
}

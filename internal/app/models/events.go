package models

import "time"

// BookingEvent is the message published after a booking has been stored.
type BookingEvent struct {
	Type            string    `json:"type"`
	BookingID       string    `json:"bookingId"`
	AppointmentDate string    `json:"appointmentDate"`
	Treatment       string    `json:"treatment"`
	Slot            string    `json:"slot"`
	Email           string    `json:"email"`
	Patient         string    `json:"patient,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

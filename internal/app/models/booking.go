package models

import (
	"time"

	"github.com/goccy/go-json"
)

// Booking is a patient's reservation of one slot of a treatment on a date.
// Fields the portal sends beyond the known ones are kept in Extra and stored
// at the top level of the document. Bookings written before createdAt existed
// leave CreatedAt nil.
type Booking struct {
	ID              string                 `json:"_id,omitempty" bson:"_id,omitempty"`
	AppointmentDate string                 `json:"appointmentDate" bson:"appointmentDate"`
	Treatment       string                 `json:"treatment" bson:"treatment"`
	Slot            string                 `json:"slot" bson:"slot"`
	Email           string                 `json:"email" bson:"email"`
	Patient         string                 `json:"patient,omitempty" bson:"patient,omitempty"`
	Phone           string                 `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt       *time.Time             `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	Extra           map[string]interface{} `json:"-" bson:",inline"`
}

// BookingKnownFields lists the document keys owned by Booking's struct fields.
var BookingKnownFields = map[string]bool{
	"_id":             true,
	"appointmentDate": true,
	"treatment":       true,
	"slot":            true,
	"email":           true,
	"patient":         true,
	"phone":           true,
	"createdAt":       true,
}

type bookingAlias Booking

func (b Booking) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(bookingAlias(b))
	if err != nil {
		return nil, err
	}
	if len(b.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]interface{}, len(b.Extra)+len(BookingKnownFields))
	for key, value := range b.Extra {
		if BookingKnownFields[key] {
			continue
		}
		merged[key] = value
	}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

package models

// AppointmentOption is a bookable treatment and the fixed catalog of slot labels
// it offers every day. The catalog is seeded outside of this service.
type AppointmentOption struct {
	ID    string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string   `json:"name" bson:"name"`
	Slots []string `json:"slots" bson:"slots"`
}

// Speciality is the projection of an AppointmentOption used by the doctor form.
type Speciality struct {
	ID   string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

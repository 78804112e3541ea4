package requests

type CreateBooking struct {
	AppointmentDate string                 `json:"appointmentDate" validate:"required"`
	Treatment       string                 `json:"treatment" validate:"required"`
	Slot            string                 `json:"slot" validate:"required"`
	Email           string                 `json:"email" validate:"required,email"`
	Patient         string                 `json:"patient"`
	Phone           string                 `json:"phone"`
	Extra           map[string]interface{} `json:"-"`
}

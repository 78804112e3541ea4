package responses

// SubmitBooking mirrors the write result the portal already understands:
// acknowledged=false with a message when the booking is rejected.
type SubmitBooking struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}

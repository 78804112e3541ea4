package constvars

const (
	ResponseUnknown = "unknown"

	BookingAlreadyExistsMessageFormat   = "You already have a booking on %s"
	BookingSlotUnavailableMessageFormat = "%s is no longer available on %s"
	UserAlreadyExistsMessage            = "user already exists"
)

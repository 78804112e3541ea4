package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_TOKEN_CLAIMS_KEY         ContextKey = "token_claims"
)

const (
	REQUEST_ID_PREFIX = "DRPRTL_SVC_"
)

const (
	RoleAdmin = "admin"
)

const (
	AppLivenessMessage = "doctors portal server is running"
)

const (
	BookingLockKeyFormat       = "booking:lock:%s:%s"
	TokenIssueLimiterGroupName = "JWT-ISSUE"
	RabbitMQEventBookingCreate = "booking.created"
)

var ImageAllowedDoctorPictureFormats = []string{".png", ".jpg", ".jpeg"}

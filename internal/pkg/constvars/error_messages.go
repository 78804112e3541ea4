package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"url":      "must be a valid URL",
	"datauri":  "must be a valid data URI",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "unauthorized access"
	ErrClientForbidden                     = "forbidden access"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientUnknownTreatment              = "the selected treatment does not exist"
	ErrClientUnknownSlot                   = "the selected slot is not offered for this treatment"
	ErrClientBookingBusy                   = "this schedule is being booked by someone else, please try again"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientRequestBodyTooLarge           = "the request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevRequestBodyTooLarge        = "request body exceeds the configured limit"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthNotAdmin              = "requester role is not admin"
	ErrDevAuthEmailMismatch         = "requested email does not match token email"
	ErrDevAuthUserNotExists         = "no user registered with the requested email"
	ErrDevAuthTokenIssueLimited     = "token issuance limit reached for email"

	// Booking messages
	ErrDevBookingConflict     = "booking already exists for email, treatment and appointment date"
	ErrDevBookingLockBusy     = "failed to acquire booking lock for treatment and appointment date"
	ErrDevBookingUnknownTreat = "treatment %s is not a known appointment option"
	ErrDevBookingUnknownSlot  = "slot %s is not offered by treatment %s"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToAggregate        = "failed when running aggregation pipeline on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBDocumentNotFound         = "document not found"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)

package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingResponseBytesKey      = "response_bytes"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingEmailKey              = "email"
	LoggingDateKey               = "date"
	LoggingTreatmentKey          = "treatment"
	LoggingSlotKey               = "slot"
	LoggingIDKey                 = "id"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectNameKey         = "object_name"
)

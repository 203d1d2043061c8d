package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingRequestKey       = "request"
	LoggingResponseKey      = "response"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorTypeKey     = "error_type"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingTransactionIDKey = "transaction_id"
	LoggingEmailKey         = "email"
	LoggingRedisKey         = "redis_key"

	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingQueueNameKey          = "queue_name"
	LoggingAppointmentsCountKey  = "appointments_count"
	LoggingRevertedCountKey      = "reverted_count"
	LoggingModifiedCountKey      = "modified_count"
	LoggingDeletedCountKey       = "deleted_count"
	LoggingHistoryIDKey          = "history_id"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
)

package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingUserIDKey         = "user_id"
	LoggingRoleKey           = "role"
	LoggingResourceKey       = "resource"
	LoggingResourceIDKey     = "resource_id"
	LoggingQueryParamsKey    = "query_params"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingCacheKey          = "cache_key"
	LoggingCacheTagsKey      = "cache_tags"
	LoggingCacheHitKey       = "cache_hit"
	LoggingRedisKey          = "redis_key"
	LoggingActionKey         = "action"
	LoggingStatusCodeKey     = "status_code"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingURLKey            = "url"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingAttemptKey        = "attempt"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"

	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)

package constvars

// Validation messages for forms, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"required_if": "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of %s",
	"gte":         "must be greater than or equal to %s",
	"lte":         "must be less than or equal to %s",
	"len":         "must be exactly %s characters long",
	"numeric":     "must contain only digits",
	"datetime":    "must follow the format %s",
	"phone":       "must be a valid phone number",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gte":      true,
	"lte":      true,
	"len":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientBackendUnavailable            = "the clinic service is not available right now"
	ErrClientResourceNotFound              = "the requested data was not found"
	ErrClientNoClinicSelected              = "please select a clinic first"
	ErrClientClinicNotAvailable            = "the selected clinic is not available for your account"
	ErrClientFeatureDisabled               = "this feature is not enabled"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientUnknownResource               = "unknown resource"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed = "url param %s validation failed"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerProcess              = "server failed to process request"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevThrottleHTTPRequest        = "failed waiting for outbound request slot"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthParseBackendToken     = "failed to parse backend access token"
	ErrDevAuthUnknownUserType       = "unknown backend user type %d"
	ErrDevAuthRoleNotAllowed        = "role %s is not allowed on this route"
	ErrDevAuthNoRefreshToken        = "no refresh token available for session"
	ErrDevAuthRefreshFailed         = "backend token refresh failed"
	ErrDevAuthRefreshWaitTimeout    = "timed out waiting for concurrent token refresh"
	ErrDevSessionNotFound           = "session not found"

	ErrDevBackendLogin         = "backend login failed"
	ErrDevBackendRequestFailed = "backend %s request on %s failed with status %d"
	ErrDevBackendDecode        = "failed to decode backend response of %s"

	ErrDevNoClinicSelected      = "doctor has no selected clinic"
	ErrDevClinicNotAvailable    = "clinic %s is not in the doctor's available clinics"
	ErrDevUnknownResource       = "unknown console resource %s"
	ErrDevUnknownUIStateAction  = "unknown ui state action %s"
	ErrDevUIStateLockNotAcquire = "could not acquire ui state lock"
	ErrDevFeatureDisabled       = "%s is not configured"
	ErrDevRateLimited           = "rate limit exceeded for %s"

	ErrDevRedisGetNoData     = "failed to get data from redis with key %s"
	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data into redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisSAdd          = "failed to add members into redis set"
	ErrDevRedisSMembers      = "failed to get members of redis set"
	ErrDevRedisExpire        = "failed to set expiry of redis key"
	ErrDevRedisUnlock        = "failed to unlock redis lock"
	ErrDevRabbitMQPublish    = "failed to publish message into queue %s"
	ErrDevMinioCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioPresignObject = "failed to presign object in bucket %s"
	ErrDevCSVWrite           = "failed to write csv export"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

package config

import (
	"clinic-console-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
		},
		Backend: AppBackend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000/api"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RateLimitPerSecond:      utils.GetEnvFloat("BACKEND_RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:          utils.GetEnvInt("BACKEND_RATE_LIMIT_BURST", 20),
			RefreshTimeoutInSeconds: utils.GetEnvInt("BACKEND_REFRESH_TIMEOUT_IN_SECONDS", 10),
			RefreshLockTTLInSeconds: utils.GetEnvInt("BACKEND_REFRESH_LOCK_TTL_IN_SECONDS", 15),
			RefreshWaitPollInMillis: utils.GetEnvInt("BACKEND_REFRESH_WAIT_POLL_IN_MILLIS", 100),
			DistributedRefreshLock:  utils.GetEnvBool("BACKEND_DISTRIBUTED_REFRESH_LOCK", true),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Session: AppSession{
			ExpiredTimeInHours: utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 8),
		},
		Cache: AppCache{
			Enabled:          utils.GetEnvBool("CACHE_ENABLED", true),
			TTLInSeconds:     utils.GetEnvInt("CACHE_TTL_IN_SECONDS", 60),
			LookupTTLSeconds: utils.GetEnvInt("CACHE_LOOKUP_TTL_IN_SECONDS", 300),
		},
		Export: AppExport{
			BucketName:                  utils.GetEnvString("EXPORT_BUCKET", "clinic-console-exports"),
			PreSignedUrlExpiryInMinutes: utils.GetEnvInt("EXPORT_PRESIGNED_URL_EXPIRY_IN_MINUTES", 15),
		},
		RabbitMQ: AppRabbitMQ{
			ActivityQueue: utils.GetEnvString("APP_RABBITMQ_ACTIVITY_QUEUE", "clinic_console_activity"),
		},
	}
}

package config

import "time"

type InternalConfig struct {
	App      App
	Backend  AppBackend
	JWT      AppJWT
	Session  AppSession
	Cache    AppCache
	Export   AppExport
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	FrontendDomain             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

// AppBackend configures the clinic REST backend the console proxies to.
type AppBackend struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	RateLimitPerSecond      float64
	RateLimitBurst          int
	RefreshTimeoutInSeconds int
	RefreshLockTTLInSeconds int
	RefreshWaitPollInMillis int
	DistributedRefreshLock  bool
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppSession struct {
	ExpiredTimeInHours int
}

type AppCache struct {
	Enabled          bool
	TTLInSeconds     int
	LookupTTLSeconds int
}

type AppExport struct {
	BucketName                  string
	PreSignedUrlExpiryInMinutes int
}

type AppRabbitMQ struct {
	ActivityQueue string
}

func (c App) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutInSeconds) * time.Second
}

func (c AppBackend) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutInSeconds) * time.Second
}

func (c AppBackend) RefreshTimeout() time.Duration {
	return time.Duration(c.RefreshTimeoutInSeconds) * time.Second
}

func (c AppBackend) RefreshLockTTL() time.Duration {
	return time.Duration(c.RefreshLockTTLInSeconds) * time.Second
}

func (c AppBackend) RefreshWaitPoll() time.Duration {
	return time.Duration(c.RefreshWaitPollInMillis) * time.Millisecond
}

func (c AppSession) TTL() time.Duration {
	return time.Duration(c.ExpiredTimeInHours) * time.Hour
}

func (c AppCache) TTL() time.Duration {
	return time.Duration(c.TTLInSeconds) * time.Second
}

func (c AppCache) LookupTTL() time.Duration {
	return time.Duration(c.LookupTTLSeconds) * time.Second
}

func (c AppExport) PreSignedUrlExpiry() time.Duration {
	return time.Duration(c.PreSignedUrlExpiryInMinutes) * time.Minute
}

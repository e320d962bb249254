package config

// EnvPrefix scopes every environment variable read by Load.
const EnvPrefix = "SALESCAMPUS"

// App environment names.
const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Storage driver names accepted by SALESCAMPUS_STORAGE_DRIVER.
const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

// DefaultSQLitePath is where the sqlite device lives when no DSN is given.
const DefaultSQLitePath = "salescampus.db"

// Environment variable names referenced outside envconfig tags (tests, error
// messages).
const (
	EnvAppEnv                 = "SALESCAMPUS_APP_ENV"
	EnvPort                   = "SALESCAMPUS_APP_PORT"
	EnvStorageDriver          = "SALESCAMPUS_STORAGE_DRIVER"
	EnvStorageDSN             = "SALESCAMPUS_STORAGE_DSN"
	EnvRedisURL               = "SALESCAMPUS_REDIS_URL"
	EnvJWTSecret              = "SALESCAMPUS_JWT_SECRET"
	EnvJWTIssuer              = "SALESCAMPUS_JWT_ISSUER"
	EnvJWTExpMins             = "SALESCAMPUS_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "SALESCAMPUS_REFRESH_TOKEN_TTL_MINUTES"
)

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Storage       StorageConfig
	Redis         RedisConfig
	JWT           JWTConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALESCAMPUS_APP_ENV" required:"true"`
	Port         string `envconfig:"SALESCAMPUS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SALESCAMPUS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALESCAMPUS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects and tunes the key/value device backing the record
// store. The sqlite driver is the durable local default; postgres and redis
// point the same key namespace at shared infrastructure.
type StorageConfig struct {
	Driver string `envconfig:"SALESCAMPUS_STORAGE_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"SALESCAMPUS_STORAGE_DSN"`

	MaxOpenConns    int           `envconfig:"SALESCAMPUS_STORAGE_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SALESCAMPUS_STORAGE_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SALESCAMPUS_STORAGE_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SALESCAMPUS_STORAGE_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (s *StorageConfig) validate() error {
	driver := strings.ToLower(strings.TrimSpace(s.Driver))
	switch driver {
	case StorageDriverMemory, StorageDriverSQLite, StorageDriverPostgres, StorageDriverRedis:
		s.Driver = driver
	default:
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}
	if s.Driver == StorageDriverSQLite && s.DSN == "" {
		s.DSN = DefaultSQLitePath
	}
	if s.Driver == StorageDriverPostgres && s.DSN == "" {
		return fmt.Errorf("%s is required for the postgres storage driver", EnvStorageDSN)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"SALESCAMPUS_REDIS_URL"`
	Address      string        `envconfig:"SALESCAMPUS_REDIS_ADDR"`
	Password     string        `envconfig:"SALESCAMPUS_REDIS_PASSWORD"`
	DB           int           `envconfig:"SALESCAMPUS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SALESCAMPUS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SALESCAMPUS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SALESCAMPUS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SALESCAMPUS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SALESCAMPUS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"SALESCAMPUS_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"SALESCAMPUS_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"SALESCAMPUS_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"SALESCAMPUS_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"SALESCAMPUS_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"SALESCAMPUS_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"SALESCAMPUS_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"SALESCAMPUS_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"SALESCAMPUS_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"SALESCAMPUS_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SALESCAMPUS_AUTO_MIGRATE" default:"false"`
	SeedOnBoot  bool `envconfig:"SALESCAMPUS_SEED_ON_BOOT" default:"true"`
}

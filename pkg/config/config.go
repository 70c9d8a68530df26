package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Identity     IdentityConfig
	CORS         CORSConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BOKPHARM_APP_ENV" required:"true"`
	Port         string `envconfig:"BOKPHARM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BOKPHARM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BOKPHARM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BOKPHARM_DB_DSN"`
	Driver string `envconfig:"BOKPHARM_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BOKPHARM_DB_HOST"`
	LegacyPort     int    `envconfig:"BOKPHARM_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BOKPHARM_DB_USER"`
	LegacyPassword string `envconfig:"BOKPHARM_DB_PASSWORD"`
	LegacyName     string `envconfig:"BOKPHARM_DB_NAME"`
	LegacySSLMode  string `envconfig:"BOKPHARM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BOKPHARM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BOKPHARM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BOKPHARM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BOKPHARM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BOKPHARM_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BOKPHARM_REDIS_ADDR"`
	Password     string        `envconfig:"BOKPHARM_REDIS_PASSWORD"`
	DB           int           `envconfig:"BOKPHARM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BOKPHARM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BOKPHARM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BOKPHARM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BOKPHARM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BOKPHARM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// IdentityConfig describes the bearer tokens minted by the external identity
// provider. The backend only verifies them; it never issues credentials.
type IdentityConfig struct {
	JWTSecret string `envconfig:"BOKPHARM_IDENTITY_JWT_SECRET" required:"true"`
	Issuer    string `envconfig:"BOKPHARM_IDENTITY_ISSUER" required:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BOKPHARM_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// RateLimitConfig throttles authenticated writes per user. A zero limit
// disables the limiter.
type RateLimitConfig struct {
	WriteLimit  int           `envconfig:"BOKPHARM_RATE_LIMIT_WRITES" default:"120"`
	WriteWindow time.Duration `envconfig:"BOKPHARM_RATE_LIMIT_WINDOW" default:"1m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BOKPHARM_AUTO_MIGRATE" default:"false"`
	SeedOnBoot  bool `envconfig:"BOKPHARM_SEED_ON_BOOT" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Store   StoreConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"FAMOUSSINCE_APP_ENV" required:"true"`
	Port         string   `envconfig:"FAMOUSSINCE_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"FAMOUSSINCE_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"FAMOUSSINCE_LOG_WARN_STACK" default:"false"`
	// CORSOrigins lists the storefront page origins allowed to call the API.
	CORSOrigins  []string `envconfig:"FAMOUSSINCE_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	// Source is either an http(s) URL or a local file path.
	Source       string        `envconfig:"FAMOUSSINCE_CATALOG_SOURCE" default:"products.json"`
	FetchTimeout time.Duration `envconfig:"FAMOUSSINCE_CATALOG_FETCH_TIMEOUT" default:"10s"`
}

// IsRemote reports whether the catalog is fetched over HTTP.
func (c CatalogConfig) IsRemote() bool {
	src := strings.ToLower(strings.TrimSpace(c.Source))
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

type StoreConfig struct {
	Driver      string `envconfig:"FAMOUSSINCE_STORE_DRIVER" default:"memory"`
	AutoMigrate bool   `envconfig:"FAMOUSSINCE_AUTO_MIGRATE" default:"false"`
}

// NormalizedDriver returns the lower-cased driver name, defaulting to memory.
func (s StoreConfig) NormalizedDriver() string {
	d := strings.ToLower(strings.TrimSpace(s.Driver))
	if d == "" {
		return StoreDriverMemory
	}
	return d
}

type DBConfig struct {
	DSN    string `envconfig:"FAMOUSSINCE_DB_DSN"`
	Driver string `envconfig:"FAMOUSSINCE_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"FAMOUSSINCE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FAMOUSSINCE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FAMOUSSINCE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FAMOUSSINCE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FAMOUSSINCE_REDIS_URL"`
	Address      string        `envconfig:"FAMOUSSINCE_REDIS_ADDR"`
	Password     string        `envconfig:"FAMOUSSINCE_REDIS_PASSWORD"`
	DB           int           `envconfig:"FAMOUSSINCE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FAMOUSSINCE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FAMOUSSINCE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FAMOUSSINCE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FAMOUSSINCE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FAMOUSSINCE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"FAMOUSSINCE_SESSION_COOKIE" default:"fs_session"`
	Header     string        `envconfig:"FAMOUSSINCE_SESSION_HEADER" default:"X-Session-Id"`
	CookieTTL  time.Duration `envconfig:"FAMOUSSINCE_SESSION_COOKIE_TTL" default:"720h"`
}

func (c *Config) validate() error {
	switch c.Store.NormalizedDriver() {
	case StoreDriverMemory:
		return nil
	case StoreDriverRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("either %s or %s is required for the redis store", EnvRedisURL, EnvRedisAddr)
		}
		return nil
	case StoreDriverPostgres, StoreDriverSQLite:
		if c.DB.DSN == "" {
			return fmt.Errorf("%s is required for the %s store", EnvDBDSN, c.Store.NormalizedDriver())
		}
		c.DB.Driver = c.Store.NormalizedDriver()
		return nil
	default:
		return fmt.Errorf("unsupported %s %q", EnvStoreDriver, c.Store.Driver)
	}
}

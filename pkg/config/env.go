package config

const EnvPrefix = "FAMOUSSINCE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

const (
	EnvAppEnv         = "FAMOUSSINCE_APP_ENV"
	EnvPort           = "FAMOUSSINCE_APP_PORT"
	EnvLogLevel       = "FAMOUSSINCE_LOG_LEVEL"
	EnvCatalogSource  = "FAMOUSSINCE_CATALOG_SOURCE"
	EnvCatalogTimeout = "FAMOUSSINCE_CATALOG_FETCH_TIMEOUT"
	EnvStoreDriver    = "FAMOUSSINCE_STORE_DRIVER"
	EnvAutoMigrate    = "FAMOUSSINCE_AUTO_MIGRATE"
	EnvDBDSN          = "FAMOUSSINCE_DB_DSN"
	EnvRedisURL       = "FAMOUSSINCE_REDIS_URL"
	EnvRedisAddr      = "FAMOUSSINCE_REDIS_ADDR"
	EnvSessionCookie  = "FAMOUSSINCE_SESSION_COOKIE"
)

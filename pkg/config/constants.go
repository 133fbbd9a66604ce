package config

const (
	EnvPrefix = "CURVECRAFT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	StoreDriverMemory = "memory"
	StoreDriverRedis  = "redis"
	StoreDriverSQL    = "sql"

	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"

	DefaultSQLiteDSN = "file:storefront.db?_pragma=busy_timeout(5000)"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv         = "CURVECRAFT_APP_ENV"
	EnvPort           = "CURVECRAFT_APP_PORT"
	EnvStoreDriver    = "CURVECRAFT_STORE_DRIVER"
	EnvRedisURL       = "CURVECRAFT_REDIS_URL"
	EnvDBDSN          = "CURVECRAFT_DB_DSN"
	EnvDBDriver       = "CURVECRAFT_DB_DRIVER"
	EnvCatalogBaseURL = "CURVECRAFT_CATALOG_BASE_URL"
	EnvOrderBaseURL   = "CURVECRAFT_ORDER_BASE_URL"
)

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Store        StoreConfig
	Redis        RedisConfig
	DB           DBConfig
	Catalog      CatalogConfig
	OrderService OrderServiceConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	if err := cfg.DB.ensureDSN(cfg.Store.Driver); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CURVECRAFT_APP_ENV" required:"true"`
	Port         string `envconfig:"CURVECRAFT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CURVECRAFT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CURVECRAFT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects the cart persistence driver.
type StoreConfig struct {
	Driver    string `envconfig:"CURVECRAFT_STORE_DRIVER" default:"memory"`
	KeyPrefix string `envconfig:"CURVECRAFT_STORE_KEY_PREFIX" default:"cc:cart"`
}

func (s StoreConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Driver)) {
	case StoreDriverMemory, StoreDriverRedis, StoreDriverSQL:
		return nil
	default:
		return fmt.Errorf("unknown store driver %q (want %s, %s or %s)",
			s.Driver, StoreDriverMemory, StoreDriverRedis, StoreDriverSQL)
	}
}

// NormalizedDriver returns the lowercase driver name.
func (s StoreConfig) NormalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(s.Driver))
}

type RedisConfig struct {
	URL          string        `envconfig:"CURVECRAFT_REDIS_URL"`
	Address      string        `envconfig:"CURVECRAFT_REDIS_ADDR"`
	Password     string        `envconfig:"CURVECRAFT_REDIS_PASSWORD"`
	DB           int           `envconfig:"CURVECRAFT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CURVECRAFT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CURVECRAFT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CURVECRAFT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CURVECRAFT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CURVECRAFT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	DSN    string `envconfig:"CURVECRAFT_DB_DSN"`
	Driver string `envconfig:"CURVECRAFT_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"CURVECRAFT_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"CURVECRAFT_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CURVECRAFT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CURVECRAFT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN(storeDriver string) error {
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	switch driver {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("unknown db driver %q (want %s or %s)", db.Driver, DBDriverSQLite, DBDriverPostgres)
	}
	db.Driver = driver

	if db.DSN != "" {
		return nil
	}
	if driver == DBDriverSQLite {
		db.DSN = DefaultSQLiteDSN
		return nil
	}
	if strings.EqualFold(storeDriver, StoreDriverSQL) {
		return fmt.Errorf("%s is required when the sql store uses postgres", EnvDBDSN)
	}
	return nil
}

// CatalogConfig points at the remote product catalog service.
type CatalogConfig struct {
	BaseURL  string        `envconfig:"CURVECRAFT_CATALOG_BASE_URL" required:"true"`
	Timeout  time.Duration `envconfig:"CURVECRAFT_CATALOG_TIMEOUT" default:"5s"`
	CacheTTL time.Duration `envconfig:"CURVECRAFT_CATALOG_CACHE_TTL" default:"60s"`
}

// OrderServiceConfig points at the remote checkout/order service.
type OrderServiceConfig struct {
	BaseURL string        `envconfig:"CURVECRAFT_ORDER_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"CURVECRAFT_ORDER_TIMEOUT" default:"15s"`
}

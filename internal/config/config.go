package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port          string `envconfig:"APP_PORT" default:"8080"`
	Env           string `envconfig:"APP_ENV" default:"development"`
	Storage       string `envconfig:"STORAGE" default:"postgres"`
	DefaultLocale string `envconfig:"DEFAULT_LOCALE" default:"en"`
}

type DBConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"pgx"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"kanso_user"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME" default:"kanso_db"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"true"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET"`
	Issuer string        `envconfig:"JWT_ISSUER" default:"kanso-vitals"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

type RateLimitConfig struct {
	Limit  int           `envconfig:"RATE_LIMIT" default:"100"`
	Window time.Duration `envconfig:"RATE_WINDOW" default:"1m"`
}

// Load reads envFiles (missing files are fine) and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			log.Printf("[CONFIG] Loaded %s", f)
		}
	}

	var cfg Config
	for _, part := range []any{&cfg.App, &cfg.DB, &cfg.Redis, &cfg.JWT, &cfg.RateLimit} {
		if err := envconfig.Process("", part); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.App.Storage = strings.ToLower(strings.TrimSpace(c.App.Storage))

	switch c.App.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: STORAGE must be %q or %q, got %q", ErrInvalidConfig, StorageMemory, StoragePostgres, c.App.Storage)
	}

	switch c.DB.Driver {
	case "pgx", "postgres":
	default:
		return fmt.Errorf("%w: DB_DRIVER must be pgx or postgres, got %q", ErrInvalidConfig, c.DB.Driver)
	}

	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return fmt.Errorf("%w: JWT_SECRET is required in production", ErrInvalidConfig)
		}
		c.JWT.Secret = "dev-secret-change-me"
	}

	if c.JWT.TTL <= 0 {
		return fmt.Errorf("%w: JWT_TTL must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Limit < 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT must be >= 0 and RATE_WINDOW positive", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func (d DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

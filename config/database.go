package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"jobtrackr"`
	Password string `env:"PASSWORD" envDefault:"jobtrackr"`
	Name     string `env:"NAME"     envDefault:"jobtrackr"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production

	// MaxOpenConns bounds the pgx stdlib pool.
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int `env:"MAX_IDLE_CONNS" envDefault:"5"`

	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// DSN returns the postgres connection string. Credentials go through
// url.UserPassword so special characters survive intact.
func (d DBConfig) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// RedisConfig contains Redis configuration for the identity cache.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// Enabled turns the identity cache on. The API works without Redis; every
	// request then verifies its token against the provider.
	Enabled bool `env:"ENABLED" envDefault:"false"`

	// IdentityTTL bounds how long a verified token keeps resolving from cache.
	IdentityTTL time.Duration `env:"IDENTITY_TTL" envDefault:"5m"`
}

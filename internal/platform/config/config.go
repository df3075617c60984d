// Package config loads process configuration from the environment once at
// startup so main stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTP     HTTP
	Database Database
	Redis    Redis
	Kafka    Kafka
	Auth     Auth
	Portal   Portal

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTP struct {
	Addr            string        `env:"USERHUB_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"USERHUB_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Database struct {
	URL          string        `env:"DATABASE_URL,required"`
	MaxOpenConns int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnLifetime time.Duration `env:"DATABASE_CONN_LIFETIME" envDefault:"30m"`
	Migrate      bool          `env:"DATABASE_MIGRATE" envDefault:"true"`
}

// Redis is optional; an empty URL disables the profile read cache.
type Redis struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	CacheTTL     time.Duration `env:"REDIS_CACHE_TTL" envDefault:"5m"`
}

// Kafka carries the audit and notification topics. Empty brokers disable
// Kafka entirely; an empty notification topic makes invitation emails
// report the channel as missing.
type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS"`
	AuditTopic        string   `env:"KAFKA_AUDIT_TOPIC" envDefault:"audit-events"`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC"`
	EnsureTopics      bool     `env:"KAFKA_ENSURE_TOPICS" envDefault:"false"`
}

type Auth struct {
	JWTSigningKey string `env:"JWT_SIGNING_KEY,required"`
}

// Portal holds the claim-page base URLs embedded in invitation emails.
type Portal struct {
	IndividualClaimURL string `env:"PORTAL_INDIVIDUAL_CLAIM_URL" envDefault:"https://portal.example.com/individual/claim"`
	EmployerClaimURL   string `env:"PORTAL_EMPLOYER_CLAIM_URL" envDefault:"https://portal.example.com/employer/claim"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

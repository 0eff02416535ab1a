package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// New reads the configuration from environment variables. It returns an error naming the first
// required variable that is missing or malformed.
func New() (Config, error) {
	var err error
	env := &reader{}

	config := Config{
		Environment: env.optional("ENVIRONMENT", "production"),
		BasePath:    env.optional("BASE_PATH", "/api"),
		Port:        env.optionalInt("PORT", 8080),
		Postgresql: Postgresql{
			Host:         env.require("DATABASE_HOST"),
			Port:         env.requireInt("DATABASE_PORT"),
			Username:     env.require("DATABASE_USERNAME"),
			Password:     env.require("DATABASE_PASSWORD"),
			DatabaseName: env.require("DATABASE_NAME"),
		},
		Redis: Redis{
			Host: env.require("REDIS_HOST"),
			Port: env.requireInt("REDIS_PORT"),
		},
		RabbitMQ: RabbitMQ{
			Host:              env.optional("RABBITMQ_HOST", ""),
			Port:              env.optionalInt("RABBITMQ_PORT", 5672),
			Username:          env.optional("RABBITMQ_USERNAME", "guest"),
			Password:          env.optional("RABBITMQ_PASSWORD", "guest"),
			NotificationQueue: env.optional("NOTIFICATION_QUEUE", "notifications"),
		},
		Authentication: Authentication{
			PublicKey: env.require("JWT_PUBLIC_KEY"),
		},
		Log: Log{
			Level:  env.optional("LOG_LEVEL", "info"),
			Pretty: env.optionalBool("LOG_PRETTY", false),
		},
		Tracing: Tracing{
			Enabled:           env.optionalBool("TRACING_ENABLED", false),
			CollectorEndpoint: env.optional("TRACING_COLLECTOR_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	if env.err != nil {
		return Config{}, env.err
	}

	config.Log.level, err = parseLevel(config.Log.Level)
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

type Config struct {
	Environment    string
	BasePath       string
	Port           int
	Postgresql     Postgresql
	Redis          Redis
	RabbitMQ       RabbitMQ
	Authentication Authentication
	Log            Log
	Tracing        Tracing
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host string
	Port int
}

// RabbitMQ is optional. Notifications are written straight to the database if no host is
// configured.
type RabbitMQ struct {
	Host              string
	Port              int
	Username          string
	Password          string
	NotificationQueue string
}

func (r RabbitMQ) Enabled() bool {
	return r.Host != ""
}

func (r RabbitMQ) GetURI() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", r.Username, r.Password, r.Host, r.Port)
}

type Authentication struct {
	// PublicKey is the PEM encoded RSA public key used to verify access tokens.
	PublicKey string
}

func (a Authentication) GetPublicKey() (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(a.PublicKey))
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing the public key")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %v", err)
	}

	publicKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is of type %T, want RSA", key)
	}
	return publicKey, nil
}

type Log struct {
	Level  string
	Pretty bool
	level  slog.Level
}

func (l Log) GetLevel() slog.Level {
	return l.level
}

type Tracing struct {
	Enabled           bool
	CollectorEndpoint string
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid LOG_LEVEL %q: %v", s, err)
	}
	return level, nil
}

// reader remembers the first error so all variables can be read in one go.
type reader struct {
	err error
}

func (r *reader) require(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists && r.err == nil {
		r.err = fmt.Errorf("can't find environment variable: %s", key)
	}
	return value
}

func (r *reader) requireInt(key string) int {
	valueStr := r.require(key)
	if valueStr == "" {
		return 0
	}
	return r.parseInt(key, valueStr)
}

func (r *reader) optional(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

func (r *reader) optionalInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return r.parseInt(key, valueStr)
}

func (r *reader) optionalBool(key string, fallback bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("can't parse %s as bool: %v", key, err)
	}
	return value
}

func (r *reader) parseInt(key, valueStr string) int {
	value, err := strconv.Atoi(valueStr)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("can't parse %s as integer: %v", key, err)
	}
	return value
}

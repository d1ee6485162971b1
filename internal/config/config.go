package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config se arma desde variables de entorno. Un .env en el directorio de
// trabajo se carga primero, sin pisar lo que ya esté definido.
type Config struct {
	HTTP   HTTP
	DB     DB
	Log    Log
	Auth   Auth
	Redis  Redis
	Kafka  Kafka
	Events Events
}

type HTTP struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

// DB vacío => repos in-memory.
type DB struct {
	DSN          string `env:"DB_DSN"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	App    string `env:"APP_NAME" envDefault:"animal-registry"`
}

// Auth sin secret => modo dev con X-Debug-User-ID.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

// Redis sin addr => borradores en memoria.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"30m"`
}

// Kafka sin brokers => no se publica nada.
type Kafka struct {
	Brokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	EventsTopic string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"animal-events"`
}

// Events permite reemplazar el catálogo por defecto. Los tipos se separan
// con | porque las etiquetas pueden llevar comas.
type Events struct {
	Types      []string `env:"EVENT_TYPES" envSeparator:"|"`
	Categories []string `env:"EVENT_CATEGORIES" envSeparator:","`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Redis.DraftTTL <= 0 {
		return nil, errors.New("DRAFT_TTL must be positive")
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.HTTP.Port
}

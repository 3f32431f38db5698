package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"localhost"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
	// "RO" turns every non-GET request into 502.
	Mode string `env:"HTTP_MODE" envDefault:"RW"`
}

type RedisCache struct {
	Host     string `env:"REDIS_HOST" envDefault:"redis"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:"shared"`
}

type Postgres struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"admin"`
	Password string `env:"DB_PASSWORD" envDefault:"shared"`
	DBName   string `env:"DB_NAME" envDefault:"cinevault"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Session struct {
	TTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
}

type S3 struct {
	// "mock" stores thumbnails in memory, "real" talks to S3 (or
	// an S3 compatible endpoint when Endpoint is set).
	ClientType string        `env:"S3_CLIENT_TYPE" envDefault:"mock"`
	Bucket     string        `env:"S3_BUCKET" envDefault:"cinevault-thumbnails"`
	Prefix     string        `env:"S3_PREFIX" envDefault:"thumbnails"`
	Endpoint   string        `env:"S3_ENDPOINT"`
	Region     string        `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKey  string        `env:"S3_ACCESS_KEY"`
	SecretKey  string        `env:"S3_SECRET_KEY"`
	LinkTTL    time.Duration `env:"S3_LINK_TTL" envDefault:"1h"`
}

type TelegramBot struct {
	Username string `env:"BOT_USERNAME" envDefault:"CineVaultBot"`
}

type Config struct {
	HTTP        HTTPServer
	Redis       RedisCache
	Postgres    Postgres
	Session     Session
	S3          S3
	TelegramBot TelegramBot
}

const logtag = "[config]"

// Load reads the env file at path (or .env when path is empty) into the
// process environment and parses the config from it.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("%s err loading env from file %s: %w", logtag, path, err)
		}
		log.Printf("%s using env from : %s", logtag, path)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s parse env: %w", logtag, err)
	}

	log.Printf("%s http=%s:%s mode=%s db=%s@%s:%s/%s redis=%s:%s s3=%s",
		logtag,
		cfg.HTTP.Host, cfg.HTTP.Port, cfg.HTTP.Mode,
		cfg.Postgres.User, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName,
		cfg.Redis.Host, cfg.Redis.Port,
		cfg.S3.ClientType,
	)
	return cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

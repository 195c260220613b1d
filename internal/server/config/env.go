package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig mirrors the variables a deployment sets. PORT is accepted for
// compatibility with PaaS conventions and becomes ":<PORT>".
type envConfig struct {
	HTTPAddr  string        `env:"HTTP_ADDR"`
	Port      string        `env:"PORT"`
	DSN       string        `env:"DATABASE_URL"`
	SecretKey string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"`
	LogLevel  string        `env:"LOG_LEVEL"`
}

// dotenvFile is loaded before reading the environment when present.
// Variables already set in the process environment win.
var dotenvFile = ".env"

func parseEnv(config *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenvFile, err)
	}

	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.Port != "" {
		config.EndpointAddrHTTP = ":" + e.Port
	}
	if e.HTTPAddr != "" {
		config.EndpointAddrHTTP = e.HTTPAddr
	}
	if e.DSN != "" {
		config.DatabaseDSN = e.DSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.TokenTTL != 0 {
		config.AccessTokenValidityDuration = e.TokenTTL
	}
	if e.LogLevel != "" {
		config.LogLevel = e.LogLevel
	}
	return nil
}

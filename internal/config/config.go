// Package config
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`

	TickFrequency   time.Duration `validate:"gt=0"`
	TickAutoStart   bool
	TickSingleTimer bool

	EventStrictRegister bool
}

var validate = validator.New()

// Largest millisecond count that still fits in a time.Duration.
const maxFrequencyMS = math.MaxInt64 / int64(time.Millisecond)

func Load() (*Config, error) {
	_ = godotenv.Load()

	// Logs
	logLevel := strings.ToLower(getEnv("LOG_LEVEL", "info"))
	logFormat := strings.ToLower(getEnv("LOG_FORMAT", "text"))

	// Ticker
	frequency := time.Second
	if raw := os.Getenv("TICK_FREQUENCY_MS"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TICK_FREQUENCY_MS %q: %w", raw, err)
		}
		if ms > maxFrequencyMS {
			return nil, fmt.Errorf("invalid TICK_FREQUENCY_MS %q: exceeds %d", raw, maxFrequencyMS)
		}
		frequency = time.Duration(ms) * time.Millisecond
	}

	autoStart, err := getEnvBool("TICK_AUTO_START", true)
	if err != nil {
		return nil, err
	}

	singleTimer, err := getEnvBool("TICK_SINGLE_TIMER", true)
	if err != nil {
		return nil, err
	}

	// Event bus
	strictRegister, err := getEnvBool("EVENT_STRICT_REGISTER", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:  logLevel,
		LogFormat: logFormat,

		TickFrequency:   frequency,
		TickAutoStart:   autoStart,
		TickSingleTimer: singleTimer,

		EventStrictRegister: strictRegister,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

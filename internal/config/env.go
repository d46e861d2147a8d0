package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads.
const EnvPrefix = "POSTLINE"

// Config is the runtime configuration of the CLI and the HTTP server.
type Config struct {
	Host           string `mapstructure:"host" validate:"required"`
	Port           int    `mapstructure:"port" validate:"min=1,max=65535"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format" validate:"oneof=json console"`
	DefaultCountry string `mapstructure:"default_country" validate:"oneof=US CA auto"`
	Strict         bool   `mapstructure:"strict"`
	ValidatePostal bool   `mapstructure:"validate_postal"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Defaults registers the default of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("default_country", "auto")
	v.SetDefault("strict", false)
	v.SetDefault("validate_postal", false)
	v.SetDefault("metrics_enabled", true)
}

// New returns a viper instance reading POSTLINE_* environment variables on
// top of the defaults. Flags can be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	Defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the .env file (if any) and decodes the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}
	if v == nil {
		v = New()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.DefaultCountry = normalizeCountry(cfg.DefaultCountry)
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func normalizeCountry(s string) string {
	switch u := strings.ToUpper(strings.TrimSpace(s)); u {
	case "US", "CA":
		return u
	case "", "AUTO":
		return "auto"
	}
	return s
}

// envPaths are searched in order; the first file found is loaded.
var envPaths = []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")}

// LoadEnv loads environment variables from the first .env file found in the
// current directory or up to two parents. Variables already set win. A
// missing file is not an error.
func LoadEnv() error {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
		return nil
	}
	return nil
}

// GetEnv gets environment variable with default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool gets boolean environment variable with default
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

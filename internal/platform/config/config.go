// Package config loads fdc configuration using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultFDCBaseURL is the FoodData Central API root.
	DefaultFDCBaseURL = "https://api.nal.usda.gov/fdc/v1"

	// DefaultFDCBatchConcurrency bounds parallel calls of a batched foods lookup.
	DefaultFDCBatchConcurrency = 4

	// DefaultTransportMaxIdleConns is the default max idle connections.
	DefaultTransportMaxIdleConns = 100

	// DefaultTransportMaxIdleConnsPerHost is the default max idle connections per host.
	DefaultTransportMaxIdleConnsPerHost = 10

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Environment variable prefixes. APP_ addresses any key with "__" between
// levels (APP_FDC__API_KEY is fdc.api_key). FDC_ is a shorthand for the
// fdc section (FDC_API_KEY is fdc.api_key).
const (
	envPrefix    = "APP_"
	fdcEnvPrefix = "FDC_"
	envDelimiter = "__"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	FDC       FDCConfig       `koanf:"fdc"       validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	Insecure     bool    `koanf:"insecure"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// FDCConfig configures the FoodData Central client.
type FDCConfig struct {
	APIKey           string          `koanf:"api_key"           validate:"required"`
	BaseURL          string          `koanf:"base_url"          validate:"required,url"`
	Timeout          time.Duration   `koanf:"timeout"           validate:"required,min=100ms"`
	BatchConcurrency int             `koanf:"batch_concurrency" validate:"required,min=1,max=32"`
	HealthTimeout    time.Duration   `koanf:"health_timeout"    validate:"required,min=100ms"`
	Transport        TransportConfig `koanf:"transport"         validate:"required"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "fdc",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "30s",

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/fdc.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.insecure":      true,
		"telemetry.service_name":  "fdc",
		"telemetry.sampling_rate": 1.0,

		"fdc.api_key":                           "",
		"fdc.base_url":                          DefaultFDCBaseURL,
		"fdc.timeout":                           "30s",
		"fdc.batch_concurrency":                 DefaultFDCBatchConcurrency,
		"fdc.health_timeout":                    "5s",
		"fdc.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"fdc.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"fdc.transport.idle_conn_timeout":       "90s",
	}
}

type loadOptions struct {
	dir    string
	file   string
	dotenv string
}

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

// WithConfigDir sets the directory holding base.yaml and the profile files.
func WithConfigDir(dir string) LoadOption {
	return func(o *loadOptions) { o.dir = dir }
}

// WithConfigFile adds an explicit YAML file loaded after the profile file.
// Unlike the directory files it must exist.
func WithConfigFile(path string) LoadOption {
	return func(o *loadOptions) { o.file = path }
}

// WithDotEnv sets the .env file read before the environment. The file is
// optional and never overrides variables that are already set.
func WithDotEnv(path string) LoadOption {
	return func(o *loadOptions) { o.dotenv = path }
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix, then FDC_ shorthand)
//  2. Variables from the .env file
//  3. Explicit config file (WithConfigFile)
//  4. Profile config file ({dir}/{profile}.yaml)
//  5. Base config file ({dir}/base.yaml)
//  6. Default values
func Load(profile string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{dir: "configs", dotenv: ".env"}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, filepath.Join(o.dir, "base.yaml")); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		if err := loadFileIfExists(k, filepath.Join(o.dir, profile+".yaml")); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	if o.file != "" {
		if err := k.Load(file.Provider(o.file), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", o.file, err)
		}
	}

	if err := loadDotEnv(o.dotenv); err != nil {
		return nil, err
	}

	// FDC_ first so that the longer APP_FDC__ form wins.
	if err := k.Load(env.Provider(fdcEnvPrefix, ".", fdcEnvKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", appEnvKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// appEnvKey maps APP_SERVER__REQUEST_TIMEOUT to server.request_timeout.
func appEnvKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(key, envDelimiter, ".")
}

// fdcEnvKey maps FDC_API_KEY to fdc.api_key and FDC_TRANSPORT__MAX_IDLE_CONNS
// to fdc.transport.max_idle_conns.
func fdcEnvKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, fdcEnvPrefix))
	return "fdc." + strings.ReplaceAll(key, envDelimiter, ".")
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

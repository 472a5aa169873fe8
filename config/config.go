package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	App     AppConfig     `yaml:"app" envconfig:"APP"`
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Weather WeatherConfig `yaml:"weather" envconfig:"WEATHER"`
	Storage StorageConfig `yaml:"storage" envconfig:"STORAGE"`
	Log     LogConfig     `yaml:"log" envconfig:"LOG"`
	Observe ObserveConfig `yaml:"observe" envconfig:"OBSERVE"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port            string `yaml:"port" envconfig:"PORT"`
	ReadTimeout     int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

type WeatherConfig struct {
	APIs            []WeatherAPIConfig `yaml:"apis" ignored:"true"`
	DefaultLocation string             `yaml:"default_location" envconfig:"DEFAULT_LOCATION"`
	RateLimit       float64            `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	RateBurst       int                `yaml:"rate_burst" envconfig:"RATE_BURST"`
}

// WeatherAPIConfig describes one forecast provider. Timeout is in seconds.
type WeatherAPIConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	Timeout int    `yaml:"timeout"`
}

type StorageConfig struct {
	Driver    string `yaml:"driver" envconfig:"DRIVER"`
	RedisAddr string `yaml:"redis_addr" envconfig:"REDIS_ADDR"`
	RedisDB   int    `yaml:"redis_db" envconfig:"REDIS_DB"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type ObserveConfig struct {
	SentryDSN string `yaml:"sentry_dsn" envconfig:"SENTRY_DSN"`
	ZipkinURL string `yaml:"zipkin_url" envconfig:"ZIPKIN_URL"`
}

// ConfigProvider loads and validates configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a YAML file and overlays environment variables.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	var cnf Config

	if err := p.loadFromFile(&cnf); err != nil {
		return nil, err
	}

	// Environment variables override the file
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	applyDefaults(&cnf)

	return &cnf, nil
}

// loadFromFile treats a missing file as an empty configuration.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if config.App.Name == "" {
		return errors.New("app.name is required")
	}
	if config.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if config.Server.ReadTimeout < 0 || config.Server.WriteTimeout < 0 || config.Server.IdleTimeout < 0 {
		return errors.New("server timeouts must not be negative")
	}
	for i, api := range config.Weather.APIs {
		if api.Name == "" {
			return fmt.Errorf("weather.apis[%d].name is required", i)
		}
		if api.Timeout < 0 {
			return fmt.Errorf("weather.apis[%d].timeout must not be negative", i)
		}
	}
	switch config.Storage.Driver {
	case "", StorageMemory:
	case StorageRedis:
		if config.Storage.RedisAddr == "" {
			return errors.New("storage.redis_addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", config.Storage.Driver)
	}

	return nil
}

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

func applyDefaults(cnf *Config) {
	if cnf.App.Name == "" {
		cnf.App.Name = "shoresquad"
	}
	if cnf.App.Version == "" {
		cnf.App.Version = "1.0.0"
	}
	if cnf.App.Env == "" {
		cnf.App.Env = "development"
	}
	if cnf.Server.Port == "" {
		cnf.Server.Port = "8080"
	}
	if cnf.Server.ReadTimeout == 0 {
		cnf.Server.ReadTimeout = 10
	}
	if cnf.Server.WriteTimeout == 0 {
		cnf.Server.WriteTimeout = 10
	}
	if cnf.Server.IdleTimeout == 0 {
		cnf.Server.IdleTimeout = 120
	}
	if cnf.Server.ShutdownTimeout == 0 {
		cnf.Server.ShutdownTimeout = 30
	}
	if cnf.Weather.DefaultLocation == "" {
		cnf.Weather.DefaultLocation = "Pasir Ris"
	}
	if cnf.Weather.RateLimit == 0 {
		cnf.Weather.RateLimit = 1
	}
	if cnf.Weather.RateBurst == 0 {
		cnf.Weather.RateBurst = 5
	}
	if cnf.Storage.Driver == "" {
		cnf.Storage.Driver = StorageMemory
	}
	if cnf.Log.Level == "" {
		cnf.Log.Level = "info"
	}
	if cnf.Log.Format == "" {
		cnf.Log.Format = "json"
	}
}

// NewConfig loads config/config.yaml overlaid with the environment.
func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(defaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// GetWeatherAPIByName returns nil, false when no provider has that name.
func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.Weather.APIs {
		if c.Weather.APIs[i].Name == name {
			return &c.Weather.APIs[i], true
		}
	}
	return nil, false
}

func (c *Config) GetWeatherAPIs() []WeatherAPIConfig {
	return c.Weather.APIs
}

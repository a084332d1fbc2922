package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// DefaultConfigPath is used when no explicit path is given
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"`
		Path   string `yaml:"path" env:"STORAGE_PATH"`
		Key    string `yaml:"key" env:"STORAGE_KEY"`
	} `yaml:"storage"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Remote struct {
		BaseURL        string `yaml:"base_url" env:"REMOTE_BASE_URL"`
		Timeout        string `yaml:"timeout" env:"REMOTE_TIMEOUT"`
		MaxConcurrency int    `yaml:"max_concurrency" env:"REMOTE_MAX_CONCURRENCY"`
	} `yaml:"remote"`

	Export struct {
		Filename string `yaml:"filename" env:"EXPORT_FILENAME"`
		Quote    bool   `yaml:"quote" env:"EXPORT_QUOTE"`
	} `yaml:"export"`

	Records struct {
		TimestampLayout string `yaml:"timestamp_layout" env:"RECORDS_TIMESTAMP_LAYOUT"`
	} `yaml:"records"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and env vars still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Storage.Driver = DriverFile
	config.Storage.Path = "data/students.json"
	config.Storage.Key = "students"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "idscan"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 1
	config.Database.MaxOpenConns = 5
	config.Database.ConnMaxLifetime = "1h"

	config.Redis.Addr = "localhost:6379"

	config.Remote.BaseURL = "http://localhost:3000"
	config.Remote.Timeout = "30s"

	config.Export.Filename = "CapturedStudents.csv"

	config.Records.TimestampLayout = "1/2/2006, 3:04:05 PM"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Driver {
	case DriverFile, DriverSQLite:
		if strings.TrimSpace(config.Storage.Path) == "" {
			return fmt.Errorf("storage path is required for driver %q", config.Storage.Driver)
		}
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database conn_max_lifetime: %w", err)
		}
	case DriverRedis:
		if config.Redis.Addr == "" {
			return fmt.Errorf("redis addr is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if strings.TrimSpace(config.Storage.Key) == "" {
		return fmt.Errorf("storage key is required")
	}

	if config.Remote.BaseURL != "" {
		if _, err := url.ParseRequestURI(config.Remote.BaseURL); err != nil {
			return fmt.Errorf("invalid remote base_url: %w", err)
		}
	}

	if _, err := time.ParseDuration(config.Remote.Timeout); err != nil {
		return fmt.Errorf("invalid remote timeout format: %w", err)
	}

	if config.Remote.MaxConcurrency < 0 {
		return fmt.Errorf("remote max_concurrency must not be negative")
	}

	if strings.TrimSpace(config.Export.Filename) == "" {
		return fmt.Errorf("export filename is required")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source kinds accepted by directory.source.
const (
	SourceFixtures = "fixtures"
	SourceDatabase = "database"
	SourceHTTP     = "http"
)

// Config represents the overall application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Directory DirectoryConfig `yaml:"directory"`
	Source    SourceConfig    `yaml:"source"`
	Database  DatabaseConfig  `yaml:"database"`
	Fixtures  FixturesConfig  `yaml:"fixtures"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-"`
}

// DirectoryConfig controls where shop data comes from and how often it is refreshed.
type DirectoryConfig struct {
	Source                 string        `yaml:"source"`
	RefreshIntervalSeconds int           `yaml:"refresh_interval_seconds"`
	RefreshInterval        time.Duration `yaml:"-"`
	RefreshDelayMillis     *int          `yaml:"refresh_delay_millis"`
	RefreshDelay           time.Duration `yaml:"-"`
}

// SourceConfig defines the upstream shop feed used when directory.source is "http".
type SourceConfig struct {
	URL            string            `yaml:"url"`
	HTTPProxy      string            `yaml:"http_proxy"`
	Headers        map[string]string `yaml:"headers"`
	PageSize       int               `yaml:"page_size"`
	Payload        map[string]any    `yaml:"payload"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// FixturesConfig points at an optional YAML fixture file. Built-in fixtures are used when empty.
type FixturesConfig struct {
	Path string `yaml:"path"`
}

// Load reads the configuration from the given path.
// A .env file in the working directory is loaded first, if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if url := os.Getenv("SOURCE_URL"); url != "" {
		cfg.Source.URL = url
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 30
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second

	switch cfg.Directory.Source {
	case SourceFixtures, SourceDatabase, SourceHTTP:
	case "":
		cfg.Directory.Source = SourceFixtures
	default:
		log.Printf("directory.source %q is not recognised; defaulting to %q", cfg.Directory.Source, SourceFixtures)
		cfg.Directory.Source = SourceFixtures
	}

	// Zero disables the periodic refresh; manual refresh still works.
	if cfg.Directory.RefreshIntervalSeconds < 0 {
		cfg.Directory.RefreshIntervalSeconds = 0
	}
	cfg.Directory.RefreshInterval = time.Duration(cfg.Directory.RefreshIntervalSeconds) * time.Second

	// Absent means the default delay; an explicit 0 disables it.
	delay := 1000
	if cfg.Directory.RefreshDelayMillis != nil && *cfg.Directory.RefreshDelayMillis >= 0 {
		delay = *cfg.Directory.RefreshDelayMillis
	}
	cfg.Directory.RefreshDelay = time.Duration(delay) * time.Millisecond

	if cfg.Source.PageSize <= 0 {
		cfg.Source.PageSize = 50
	}
	if cfg.Source.TimeoutSeconds <= 0 {
		cfg.Source.TimeoutSeconds = 30
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
}

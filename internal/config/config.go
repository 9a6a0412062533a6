package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for the topic search service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Topic    TopicConfig    `yaml:"topic"`
	Cache    CacheConfig    `yaml:"cache"`
	Logging  LoggingConfig  `yaml:"logging"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port" env:"TOPIC_SEARCH_PORT"`
	Debug   bool   `yaml:"debug" env:"TOPIC_SEARCH_DEBUG"`
}

// UpstreamConfig holds configuration for the content hub backend API.
type UpstreamConfig struct {
	BaseURL string `yaml:"base_url" env:"HUB_API_URL"`
	// Timeout applies per request; the fetch layer makes a single attempt
	// per source and never retries.
	Timeout time.Duration `yaml:"timeout"`
	// SnapshotPath is the static weeks catalog snapshot used when the live
	// catalog endpoint is unreachable.
	SnapshotPath string `yaml:"snapshot_path" env:"HUB_SNAPSHOT_PATH"`
}

// TopicConfig holds topic archive query configuration.
type TopicConfig struct {
	// PageSize is the number of period buckets per result page.
	PageSize int `yaml:"page_size"`
	// MaxPeriods bounds how many of the newest catalog periods are scanned
	// per query. Older periods are never fetched.
	MaxPeriods int `yaml:"max_periods"`
	// MaxPeriodChips caps the period filter list returned with a result.
	MaxPeriodChips int `yaml:"max_period_chips"`
	// DefaultLanguage is used when the caller supplies no or an unsupported
	// language.
	DefaultLanguage string `yaml:"default_language"`
	// SiteBaseURL is the public site origin used for canonical permalinks.
	SiteBaseURL string `yaml:"site_base_url" env:"SITE_BASE_URL"`
}

// CacheConfig holds the optional Redis cache for upstream responses.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled" env:"CACHE_ENABLED"`
	Address  string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB"`
	TTL      time.Duration `yaml:"ttl"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled"`
	AllowedOrigins   []string `yaml:"allowed_origins" env:"CORS_ORIGINS"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// Load loads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	cfg, err := loadWithDefaults[Config](path, setDefaults)
	if err != nil {
		return nil, err
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	// Service defaults
	if cfg.Service.Name == "" {
		cfg.Service.Name = "topic-search"
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = "1.0.0"
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = 8094
	}

	// Upstream defaults
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = "https://api-production-3ee5.up.railway.app/api"
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 10 * time.Second
	}
	if cfg.Upstream.SnapshotPath == "" {
		cfg.Upstream.SnapshotPath = "data/weeks.json"
	}

	// Topic defaults
	if cfg.Topic.PageSize == 0 {
		cfg.Topic.PageSize = 3
	}
	if cfg.Topic.MaxPeriods == 0 {
		cfg.Topic.MaxPeriods = 6
	}
	if cfg.Topic.MaxPeriodChips == 0 {
		cfg.Topic.MaxPeriodChips = 12
	}
	if cfg.Topic.DefaultLanguage == "" {
		cfg.Topic.DefaultLanguage = "de"
	}
	if cfg.Topic.SiteBaseURL == "" {
		cfg.Topic.SiteBaseURL = "https://www.datacubeai.space"
	}

	// Cache defaults
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = time.Hour
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	// CORS defaults
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := ValidatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if c.Upstream.BaseURL == "" {
		return &ValidationError{Field: "upstream.base_url", Message: "is required"}
	}
	if c.Topic.PageSize < 1 {
		return &ValidationError{Field: "topic.page_size", Message: "must be greater than 0"}
	}
	if c.Topic.MaxPeriods < 1 {
		return &ValidationError{Field: "topic.max_periods", Message: "must be greater than 0"}
	}
	if c.Cache.Enabled && c.Cache.Address == "" {
		return &ValidationError{Field: "cache.address", Message: "is required when cache is enabled"}
	}
	if err := ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := ValidateLogFormat(c.Logging.Format); err != nil {
		return err
	}
	return nil
}

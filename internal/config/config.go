package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SourceConfig controls the NewsData.io article source.
type SourceConfig struct {
	APIKey        string `mapstructure:"api_key"`
	BaseURL       string `mapstructure:"base_url"`
	Query         string `mapstructure:"query"`    // search term, e.g. "football"
	Language      string `mapstructure:"language"` // e.g. "en"
	Country       string `mapstructure:"country"`  // e.g. "us"
	MaxPages      int    `mapstructure:"max_pages"`
	FetchInterval string `mapstructure:"fetch_interval"` // duration string, e.g., "15m"
	CacheTTL      string `mapstructure:"cache_ttl"`      // duration string, e.g., "24h"
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// ReportConfig controls the periodic analytics digest.
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	Interval  string `mapstructure:"interval"` // duration string, e.g., "24h"
}

// Config is the top-level configuration structure.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Source SourceConfig `mapstructure:"source"`
	Server ServerConfig `mapstructure:"server"`
	Report ReportConfig `mapstructure:"report"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://newsdata.io/api/1"
	}
	if c.Source.Query == "" {
		c.Source.Query = "football"
	}
	if c.Source.Language == "" {
		c.Source.Language = "en"
	}
	if c.Source.Country == "" {
		c.Source.Country = "us"
	}
	if c.Source.MaxPages == 0 {
		c.Source.MaxPages = 1
	}
	if c.Source.FetchInterval == "" {
		c.Source.FetchInterval = "15m"
	}
	if c.Source.CacheTTL == "" {
		c.Source.CacheTTL = "24h"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "./out"
	}
	if c.Report.Interval == "" {
		c.Report.Interval = "24h"
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Bloom     BloomConfig     `mapstructure:"bloom"`
	RocketMQ  RocketMQConfig  `mapstructure:"rocketmq"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Links     LinksConfig     `mapstructure:"links"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	BasePath string `mapstructure:"base_path"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// BloomConfig represents the visitor Bloom Filter configuration
type BloomConfig struct {
	Capacity  int64   `mapstructure:"capacity"`
	ErrorRate float64 `mapstructure:"error_rate"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// AnalyticsConfig controls rollup windows and retention
type AnalyticsConfig struct {
	Timezone          string        `mapstructure:"timezone"`
	DailyRetention    int           `mapstructure:"daily_retention"`
	WeeklyRetention   int           `mapstructure:"weekly_retention"`
	RollupInterval    time.Duration `mapstructure:"rollup_interval"`
	RecentDays        int           `mapstructure:"recent_days"`
	DetailDays        int           `mapstructure:"detail_days"`
	RecentClicksLimit int           `mapstructure:"recent_clicks_limit"`
	TopLinksLimit     int           `mapstructure:"top_links_limit"`
	LinksCacheTTL     time.Duration `mapstructure:"links_cache_ttl"`
}

// LinksConfig holds link defaults and the seed set used on an empty store
type LinksConfig struct {
	DefaultGradient string     `mapstructure:"default_gradient"`
	Seed            []SeedLink `mapstructure:"seed"`
}

// SeedLink is a link inserted on first start
type SeedLink struct {
	Title    string `mapstructure:"title"`
	URL      string `mapstructure:"url"`
	Type     string `mapstructure:"type"`
	Gradient string `mapstructure:"gradient"`
}

// Location resolves the configured time zone, falling back to the local zone
func (a AnalyticsConfig) Location() *time.Location {
	if a.Timezone == "" || strings.EqualFold(a.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LINKHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(cfg.Database.MySQL.DSN)

	if cfg.Analytics.Timezone != "" && !strings.EqualFold(cfg.Analytics.Timezone, "local") {
		if _, err := time.LoadLocation(cfg.Analytics.Timezone); err != nil {
			return nil, fmt.Errorf("invalid analytics.timezone %q: %w", cfg.Analytics.Timezone, err)
		}
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_path", "/api")
	v.SetDefault("bloom.capacity", 10000000)
	v.SetDefault("bloom.error_rate", 0.01)
	v.SetDefault("rocketmq.topic", "linkhub_events")
	v.SetDefault("rocketmq.group", "linkhub_consumer_group")
	v.SetDefault("analytics.timezone", "Local")
	v.SetDefault("analytics.daily_retention", 30)
	v.SetDefault("analytics.weekly_retention", 12)
	v.SetDefault("analytics.rollup_interval", "24h")
	v.SetDefault("analytics.recent_days", 7)
	v.SetDefault("analytics.detail_days", 30)
	v.SetDefault("analytics.recent_clicks_limit", 50)
	v.SetDefault("analytics.top_links_limit", 5)
	v.SetDefault("analytics.links_cache_ttl", "10m")
	v.SetDefault("links.default_gradient", "from-blue-500 to-purple-600")
}

// expandEnv resolves a value of the form ${NAME} from the environment
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}

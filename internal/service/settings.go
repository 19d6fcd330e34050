package service

import (
	"time"

	"linkhub/internal/config"
)

// Settings holds the tunables shared by the link, aggregation and query services
type Settings struct {
	Location          *time.Location
	DailyRetention    int
	WeeklyRetention   int
	RecentDays        int
	DetailDays        int
	RecentClicksLimit int
	TopLinksLimit     int
	DefaultGradient   string
	LinksCacheTTL     time.Duration
}

// DefaultSettings returns the built-in defaults in the local time zone
func DefaultSettings() Settings {
	return Settings{
		Location:          time.Local,
		DailyRetention:    30,
		WeeklyRetention:   12,
		RecentDays:        7,
		DetailDays:        30,
		RecentClicksLimit: 50,
		TopLinksLimit:     5,
		DefaultGradient:   "from-blue-500 to-purple-600",
		LinksCacheTTL:     10 * time.Minute,
	}
}

// SettingsFromConfig builds Settings from the loaded configuration. Zero values
// keep their defaults.
func SettingsFromConfig(cfg *config.Config) Settings {
	s := DefaultSettings()
	if cfg == nil {
		return s
	}

	a := cfg.Analytics
	s.Location = a.Location()
	if a.DailyRetention > 0 {
		s.DailyRetention = a.DailyRetention
	}
	if a.WeeklyRetention > 0 {
		s.WeeklyRetention = a.WeeklyRetention
	}
	if a.RecentDays > 0 {
		s.RecentDays = a.RecentDays
	}
	if a.DetailDays > 0 {
		s.DetailDays = a.DetailDays
	}
	if a.RecentClicksLimit > 0 {
		s.RecentClicksLimit = a.RecentClicksLimit
	}
	if a.TopLinksLimit > 0 {
		s.TopLinksLimit = a.TopLinksLimit
	}
	if a.LinksCacheTTL > 0 {
		s.LinksCacheTTL = a.LinksCacheTTL
	}
	if cfg.Links.DefaultGradient != "" {
		s.DefaultGradient = cfg.Links.DefaultGradient
	}
	return s
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

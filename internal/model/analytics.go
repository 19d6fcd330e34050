package model

import (
	"time"
)

// SummaryID is the primary key of the single analytics summary row
const SummaryID = 1

// AnalyticsSummary holds the running totals; exactly one row exists
type AnalyticsSummary struct {
	ID          int64     `json:"-" gorm:"primaryKey"`
	TotalViews  int64     `json:"totalViews" gorm:"default:0;not null"`
	TotalClicks int64     `json:"totalClicks" gorm:"default:0;not null"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// TableName returns the table name for AnalyticsSummary
func (AnalyticsSummary) TableName() string {
	return "analytics_summary"
}

// DailyBucket is the rollup of one calendar day
type DailyBucket struct {
	ID     int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	Day    string    `json:"day" gorm:"type:varchar(10);uniqueIndex;not null"`
	Date   time.Time `json:"date" gorm:"not null"`
	Views  int64     `json:"views"`
	Clicks int64     `json:"clicks"`
}

// TableName returns the table name for DailyBucket
func (DailyBucket) TableName() string {
	return "daily_buckets"
}

// WeeklyBucket is the rollup of one Sunday-to-Saturday week
type WeeklyBucket struct {
	ID        int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	WeekStart time.Time `json:"weekStart" gorm:"uniqueIndex;not null"`
	WeekEnd   time.Time `json:"weekEnd" gorm:"not null"`
	Views     int64     `json:"views"`
	Clicks    int64     `json:"clicks"`
	ClickRate float64   `json:"clickRate"`
}

// TableName returns the table name for WeeklyBucket
func (WeeklyBucket) TableName() string {
	return "weekly_buckets"
}

// TopLink is a compact link entry used in summaries
type TopLink struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Clicks int64  `json:"clicks"`
	URL    string `json:"url"`
}

// LinkStat is a per-link row of the summary
type LinkStat struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Clicks int64    `json:"clicks"`
	URL    string   `json:"url"`
	Type   LinkType `json:"type"`
}

// SourceStat represents referrer source statistics
type SourceStat struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

// TrafficStats are the Redis-backed visitor numbers
type TrafficStats struct {
	UniqueVisitorsToday int64        `json:"uniqueVisitorsToday"`
	UniqueVisitorsTotal int64        `json:"uniqueVisitorsTotal"`
	TopSources          []SourceStat `json:"topSources"`
}

// SummaryResponse is the payload of GET /analytics
type SummaryResponse struct {
	TotalViews       int64          `json:"totalViews"`
	TotalClicks      int64          `json:"totalClicks"`
	OverallClickRate float64        `json:"overallClickRate"`
	RecentViews      int64          `json:"recentViews"`
	RecentClicks     int64          `json:"recentClicks"`
	LastUpdated      time.Time      `json:"lastUpdated"`
	TopLinks         []TopLink      `json:"topLinks"`
	DailyStats       []DailyBucket  `json:"dailyStats"`
	WeeklyStats      []WeeklyBucket `json:"weeklyStats"`
	LinkStats        []LinkStat     `json:"linkStats"`
	Traffic          *TrafficStats  `json:"traffic,omitempty"`
}

// LinkDetailResponse is the payload of GET /analytics/link/:linkId
type LinkDetailResponse struct {
	Link         Link             `json:"link"`
	DailyClicks  map[string]int64 `json:"dailyClicks"`
	RecentClicks []ClickEvent     `json:"recentClicks"`
	TotalClicks  int64            `json:"totalClicks"`
}

// HealthResponse is the payload of GET /health
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

package service

import (
	"context"
	"time"

	"linkhub/internal/config"
	"linkhub/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	ListLinks(ctx context.Context) ([]model.Link, error)
	ListLinksByClicks(ctx context.Context, limit int) ([]model.Link, error)
	GetLink(ctx context.Context, id string) (*model.Link, error)
	CountLinks(ctx context.Context) (int64, error)
	CreateLink(ctx context.Context, link *model.Link) error
	CreateLinks(ctx context.Context, links []model.Link) error
	UpdateLink(ctx context.Context, link *model.Link, fields map[string]interface{}) error
	DeleteLink(ctx context.Context, id string) (int64, error)
	IncrementLinkClicks(ctx context.Context, id string, at time.Time) (int64, error)

	SaveViewEvent(ctx context.Context, event *model.ViewEvent) error
	SaveClickEvent(ctx context.Context, event *model.ClickEvent) error
	CountViewEvents(ctx context.Context, from, to time.Time) (int64, error)
	CountClickEvents(ctx context.Context, from, to time.Time) (int64, error)
	GetClickEventsSince(ctx context.Context, linkID string, since time.Time) ([]model.ClickEvent, error)
	GetRecentClickEvents(ctx context.Context, linkID string, limit int) ([]model.ClickEvent, error)
	DeleteClickEvents(ctx context.Context, linkID string) (int64, error)

	EnsureSummary(ctx context.Context, at time.Time) (*model.AnalyticsSummary, error)
	GetSummary(ctx context.Context) (*model.AnalyticsSummary, error)
	IncrementTotalViews(ctx context.Context, at time.Time) error
	IncrementTotalClicks(ctx context.Context, at time.Time) error

	DailyBucketExists(ctx context.Context, day string) (bool, error)
	SaveDailyBucket(ctx context.Context, bucket *model.DailyBucket) error
	ListDailyBuckets(ctx context.Context, limit int) ([]model.DailyBucket, error)
	TrimDailyBuckets(ctx context.Context, keep int) (int64, error)
	WeeklyBucketExists(ctx context.Context, weekStart time.Time) (bool, error)
	SaveWeeklyBucket(ctx context.Context, bucket *model.WeeklyBucket) error
	ListWeeklyBuckets(ctx context.Context, limit int) ([]model.WeeklyBucket, error)
	TrimWeeklyBuckets(ctx context.Context, keep int) (int64, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	SaveLinks(ctx context.Context, links []model.Link, ttl time.Duration) error
	GetLinks(ctx context.Context) ([]model.Link, error)
	InvalidateLinks(ctx context.Context) error
	AddSource(ctx context.Context, day, source string) error
	GetSources(ctx context.Context) (map[string]int64, error)
	AddDailyVisitor(ctx context.Context, day, visitorID string) (bool, error)
	GetDailyVisitors(ctx context.Context, day string) (int64, error)
	IncrementVisitorTotal(ctx context.Context) (int64, error)
	GetVisitorTotal(ctx context.Context) (int64, error)
}

// VisitorFilterInterface defines the interface for the all-time visitor filter (for testing)
type VisitorFilterInterface interface {
	Add(ctx context.Context, visitorID string) (bool, error)
}

// LinkServiceInterface defines the interface for link store operations
type LinkServiceInterface interface {
	List(ctx context.Context) ([]model.Link, error)
	Create(ctx context.Context, req *model.CreateLinkRequest) (*model.Link, error)
	Update(ctx context.Context, id string, req *model.UpdateLinkRequest) (*model.Link, error)
	Delete(ctx context.Context, id string) error
	SeedDefaults(ctx context.Context, seeds []config.SeedLink) (int, error)
}

// AggregatorInterface defines the interface for event recording and rollups
type AggregatorInterface interface {
	RecordView(ctx context.Context, meta model.RequestMeta) error
	RecordClick(ctx context.Context, linkID string, meta model.RequestMeta) (*model.Link, error)
	ReconcileDaily(ctx context.Context, asOf time.Time) (bool, error)
	ReconcileWeekly(ctx context.Context, asOf time.Time) (bool, error)
}

// QueryServiceInterface defines the interface for analytics read queries
type QueryServiceInterface interface {
	GetSummary(ctx context.Context) (*model.SummaryResponse, error)
	GetLinkDetail(ctx context.Context, linkID string) (*model.LinkDetailResponse, error)
}

// TrafficServiceInterface defines the interface for visitor traffic statistics
type TrafficServiceInterface interface {
	RecordTraffic(ctx context.Context, event *model.TrafficEvent) error
	GetTraffic(ctx context.Context) (*model.TrafficStats, error)
}

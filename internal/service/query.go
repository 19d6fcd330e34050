package service

import (
	"context"
	"errors"
	"time"

	"linkhub/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QueryService answers the read side of analytics
type QueryService struct {
	mysqlRepo MySQLRepositoryInterface
	traffic   TrafficServiceInterface
	settings  Settings
	now       func() time.Time
}

// NewQueryService creates a new Query Service. traffic may be nil, in which
// case summaries carry no visitor statistics.
func NewQueryService(mysqlRepo MySQLRepositoryInterface, traffic TrafficServiceInterface, settings Settings) *QueryService {
	return &QueryService{
		mysqlRepo: mysqlRepo,
		traffic:   traffic,
		settings:  settings,
		now:       time.Now,
	}
}

// GetSummary returns the totals, recent activity, top links and rollup buckets
func (q *QueryService) GetSummary(ctx context.Context) (*model.SummaryResponse, error) {
	summary, err := q.mysqlRepo.GetSummary(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("Failed to load analytics summary")
			return nil, storageError("get summary", err)
		}
		summary = &model.AnalyticsSummary{ID: model.SummaryID}
	}

	now := q.now()
	recentFrom := now.AddDate(0, 0, -q.settings.RecentDays)
	recentViews, err := q.mysqlRepo.CountViewEvents(ctx, recentFrom, now)
	if err != nil {
		return nil, storageError("count recent views", err)
	}
	recentClicks, err := q.mysqlRepo.CountClickEvents(ctx, recentFrom, now)
	if err != nil {
		return nil, storageError("count recent clicks", err)
	}

	links, err := q.mysqlRepo.ListLinksByClicks(ctx, 0)
	if err != nil {
		return nil, storageError("list links by clicks", err)
	}

	daily, err := q.mysqlRepo.ListDailyBuckets(ctx, q.settings.DailyRetention)
	if err != nil {
		return nil, storageError("list daily buckets", err)
	}
	if daily == nil {
		daily = []model.DailyBucket{}
	}

	weekly, err := q.mysqlRepo.ListWeeklyBuckets(ctx, q.settings.WeeklyRetention)
	if err != nil {
		return nil, storageError("list weekly buckets", err)
	}
	if weekly == nil {
		weekly = []model.WeeklyBucket{}
	}

	topLinks := make([]model.TopLink, 0, q.settings.TopLinksLimit)
	linkStats := make([]model.LinkStat, 0, len(links))
	for i, link := range links {
		if i < q.settings.TopLinksLimit {
			topLinks = append(topLinks, model.TopLink{
				ID:     link.ID,
				Title:  link.Title,
				Clicks: link.ClickCount,
				URL:    link.URL,
			})
		}
		linkStats = append(linkStats, model.LinkStat{
			ID:     link.ID,
			Title:  link.Title,
			Clicks: link.ClickCount,
			URL:    link.URL,
			Type:   link.Type,
		})
	}

	resp := &model.SummaryResponse{
		TotalViews:       summary.TotalViews,
		TotalClicks:      summary.TotalClicks,
		OverallClickRate: clickRate(summary.TotalClicks, summary.TotalViews),
		RecentViews:      recentViews,
		RecentClicks:     recentClicks,
		LastUpdated:      summary.LastUpdated,
		TopLinks:         topLinks,
		DailyStats:       daily,
		WeeklyStats:      weekly,
		LinkStats:        linkStats,
	}

	if q.traffic != nil {
		traffic, err := q.traffic.GetTraffic(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to load traffic stats")
		} else {
			resp.Traffic = traffic
		}
	}

	return resp, nil
}

// GetLinkDetail returns one link with its per-day clicks and latest click events
func (q *QueryService) GetLinkDetail(ctx context.Context, linkID string) (*model.LinkDetailResponse, error) {
	link, err := q.mysqlRepo.GetLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		log.Error().Err(err).Str("link_id", linkID).Msg("Failed to load link")
		return nil, storageError("get link", err)
	}

	loc := q.settings.location()
	since := q.now().AddDate(0, 0, -q.settings.DetailDays)
	history, err := q.mysqlRepo.GetClickEventsSince(ctx, linkID, since)
	if err != nil {
		return nil, storageError("get click history", err)
	}

	dailyClicks := make(map[string]int64)
	for _, click := range history {
		dailyClicks[dayKey(click.Timestamp, loc)]++
	}

	recent, err := q.mysqlRepo.GetRecentClickEvents(ctx, linkID, q.settings.RecentClicksLimit)
	if err != nil {
		return nil, storageError("get recent clicks", err)
	}
	if recent == nil {
		recent = []model.ClickEvent{}
	}

	return &model.LinkDetailResponse{
		Link:         *link,
		DailyClicks:  dailyClicks,
		RecentClicks: recent,
		TotalClicks:  link.ClickCount,
	}, nil
}

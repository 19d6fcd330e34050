package service

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"linkhub/internal/model"
	"linkhub/pkg/util"

	"github.com/rs/zerolog/log"
)

const topSourcesLimit = 10

// TrafficService keeps the Redis-backed visitor statistics
type TrafficService struct {
	redisRepo RedisRepositoryInterface
	visitors  VisitorFilterInterface
	loc       *time.Location
	now       func() time.Time
}

// NewTrafficService creates a new Traffic Service. visitors may be nil, in
// which case the all-time visitor counter is not maintained.
func NewTrafficService(redisRepo RedisRepositoryInterface, visitors VisitorFilterInterface, loc *time.Location) *TrafficService {
	if loc == nil {
		loc = time.Local
	}
	return &TrafficService{
		redisRepo: redisRepo,
		visitors:  visitors,
		loc:       loc,
		now:       time.Now,
	}
}

// RecordTraffic records the referrer source of a view and counts its visitor.
// Redis failures are logged and never returned.
func (ts *TrafficService) RecordTraffic(ctx context.Context, event *model.TrafficEvent) error {
	if event == nil {
		return nil
	}

	at := event.OccurredAt
	if at.IsZero() {
		at = ts.now()
	}
	day := dayKey(at, ts.loc)

	// Sources describe how visitors reach the page, so clicks do not count
	if event.Kind == model.TrafficKindView {
		source := ts.extractSource(event.Referrer)
		if err := ts.redisRepo.AddSource(ctx, day, source); err != nil {
			log.Error().Err(err).Str("source", source).Msg("Failed to add source")
		}
	}

	visitorID := util.Fingerprint(event.ClientIP, event.UserAgent)
	if _, err := ts.redisRepo.AddDailyVisitor(ctx, day, visitorID); err != nil {
		log.Error().Err(err).Str("day", day).Msg("Failed to add daily visitor")
	}

	if ts.visitors == nil {
		return nil
	}
	isNew, err := ts.visitors.Add(ctx, visitorID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to add visitor to filter")
		return nil
	}
	if isNew {
		if _, err := ts.redisRepo.IncrementVisitorTotal(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to increment visitor total")
		}
	}

	return nil
}

// GetTraffic returns today's and all-time unique visitors and the top sources
func (ts *TrafficService) GetTraffic(ctx context.Context) (*model.TrafficStats, error) {
	day := dayKey(ts.now(), ts.loc)

	today, err := ts.redisRepo.GetDailyVisitors(ctx, day)
	if err != nil {
		log.Error().Err(err).Str("day", day).Msg("Failed to get daily visitors")
		today = 0
	}

	total, err := ts.redisRepo.GetVisitorTotal(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get visitor total")
		total = 0
	}

	sources, err := ts.redisRepo.GetSources(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get sources")
		sources = make(map[string]int64)
	}

	return &model.TrafficStats{
		UniqueVisitorsToday: today,
		UniqueVisitorsTotal: total,
		TopSources:          ts.getTopSources(sources, topSourcesLimit),
	}, nil
}

// extractSource maps a referrer URL to a short source name
func (ts *TrafficService) extractSource(referrer string) string {
	if referrer == "" {
		return "direct"
	}

	u, err := url.Parse(referrer)
	if err != nil || u.Host == "" {
		return "unknown"
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	switch {
	case strings.Contains(host, "google"):
		return "google"
	case strings.Contains(host, "bing"):
		return "bing"
	case strings.Contains(host, "duckduckgo"):
		return "duckduckgo"
	case strings.Contains(host, "instagram"):
		return "instagram"
	case strings.Contains(host, "linkedin") || host == "lnkd.in":
		return "linkedin"
	case strings.Contains(host, "twitter") || host == "t.co" || host == "x.com":
		return "twitter"
	case strings.Contains(host, "facebook") || host == "fb.com":
		return "facebook"
	case strings.Contains(host, "github"):
		return "github"
	case strings.Contains(host, "youtube") || host == "youtu.be":
		return "youtube"
	case strings.Contains(host, "tiktok"):
		return "tiktok"
	default:
		parts := strings.Split(host, ".")
		if len(parts) >= 2 {
			return parts[len(parts)-2]
		}
		return host
	}
}

// getTopSources returns the top N sources, most frequent first
func (ts *TrafficService) getTopSources(sources map[string]int64, limit int) []model.SourceStat {
	stats := make([]model.SourceStat, 0, len(sources))
	for source, count := range sources {
		stats = append(stats, model.SourceStat{Source: source, Count: count})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Source < stats[j].Source
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

package service

import (
	"context"
	"errors"
	"time"

	"linkhub/internal/model"
	"linkhub/pkg/util"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Aggregator records view and click events, keeps the running totals and
// rolls the event log up into daily and weekly buckets.
//
// Init must be called once before the first event is recorded so the summary
// row exists for the atomic increments.
type Aggregator struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	settings  Settings
	now       func() time.Time
	newID     func() string
}

// NewAggregator creates a new Aggregator. redisRepo is only used to drop the
// cached link list after a click and may be nil.
func NewAggregator(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface, settings Settings) *Aggregator {
	return &Aggregator{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
		settings:  settings,
		now:       time.Now,
		newID:     util.GenerateUUID,
	}
}

// Init creates the summary row when it does not exist yet
func (a *Aggregator) Init(ctx context.Context) error {
	summary, err := a.mysqlRepo.EnsureSummary(ctx, a.now())
	if err != nil {
		return storageError("init summary", err)
	}

	log.Info().
		Int64("total_views", summary.TotalViews).
		Int64("total_clicks", summary.TotalClicks).
		Msg("Analytics summary ready")
	return nil
}

// RecordView appends a view event, bumps the view total and reconciles today's bucket
func (a *Aggregator) RecordView(ctx context.Context, meta model.RequestMeta) error {
	now := a.now()

	event := &model.ViewEvent{
		ID:        a.newID(),
		Timestamp: now,
		UserAgent: meta.UserAgent,
		IP:        meta.IP,
		Referrer:  meta.Referrer,
	}
	if err := a.mysqlRepo.SaveViewEvent(ctx, event); err != nil {
		log.Error().Err(err).Msg("Failed to save view event")
		return storageError("save view event", err)
	}

	if err := a.mysqlRepo.IncrementTotalViews(ctx, now); err != nil {
		log.Error().Err(err).Msg("Failed to increment total views")
		return storageError("increment total views", err)
	}

	a.reconcileToday(ctx, now)
	return nil
}

// RecordClick counts a click on linkID and returns the updated link
func (a *Aggregator) RecordClick(ctx context.Context, linkID string, meta model.RequestMeta) (*model.Link, error) {
	now := a.now()

	affected, err := a.mysqlRepo.IncrementLinkClicks(ctx, linkID, now)
	if err != nil {
		log.Error().Err(err).Str("link_id", linkID).Msg("Failed to increment link clicks")
		return nil, storageError("increment link clicks", err)
	}
	if affected == 0 {
		return nil, ErrLinkNotFound
	}

	event := &model.ClickEvent{
		ID:        a.newID(),
		LinkID:    linkID,
		Timestamp: now,
		UserAgent: meta.UserAgent,
		IP:        meta.IP,
		Referrer:  meta.Referrer,
	}
	if err := a.mysqlRepo.SaveClickEvent(ctx, event); err != nil {
		log.Error().Err(err).Str("link_id", linkID).Msg("Failed to save click event")
		return nil, storageError("save click event", err)
	}

	if err := a.mysqlRepo.IncrementTotalClicks(ctx, now); err != nil {
		log.Error().Err(err).Msg("Failed to increment total clicks")
		return nil, storageError("increment total clicks", err)
	}

	if a.redisRepo != nil {
		if err := a.redisRepo.InvalidateLinks(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to invalidate links cache")
		}
	}

	a.reconcileToday(ctx, now)

	link, err := a.mysqlRepo.GetLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, storageError("get link", err)
	}
	return link, nil
}

// ReconcileDaily stores the bucket of the day containing asOf unless one
// already exists, then trims the daily list to the retention limit. It
// reports whether a bucket was written.
//
// An existing bucket is never recomputed, so events recorded after the first
// reconciliation of a day are not reflected in that day's bucket.
func (a *Aggregator) ReconcileDaily(ctx context.Context, asOf time.Time) (bool, error) {
	loc := a.settings.location()
	start, end := dayWindow(asOf, loc)
	day := dayKey(start, loc)

	exists, err := a.mysqlRepo.DailyBucketExists(ctx, day)
	if err != nil {
		return false, storageError("check daily bucket", err)
	}
	if exists {
		return false, nil
	}

	views, clicks, err := a.countWindow(ctx, start, end)
	if err != nil {
		return false, err
	}

	bucket := &model.DailyBucket{
		Day:    day,
		Date:   start,
		Views:  views,
		Clicks: clicks,
	}
	if err := a.mysqlRepo.SaveDailyBucket(ctx, bucket); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, storageError("save daily bucket", err)
	}

	trimmed, err := a.mysqlRepo.TrimDailyBuckets(ctx, a.settings.DailyRetention)
	if err != nil {
		return true, storageError("trim daily buckets", err)
	}

	log.Debug().
		Str("day", day).
		Int64("views", views).
		Int64("clicks", clicks).
		Int64("trimmed", trimmed).
		Msg("Daily bucket stored")
	return true, nil
}

// ReconcileWeekly stores the bucket of the Sunday-to-Saturday week containing
// asOf unless one already exists, then trims the weekly list to the retention
// limit. It reports whether a bucket was written.
func (a *Aggregator) ReconcileWeekly(ctx context.Context, asOf time.Time) (bool, error) {
	loc := a.settings.location()
	start, end := weekWindow(asOf, loc)

	exists, err := a.mysqlRepo.WeeklyBucketExists(ctx, start)
	if err != nil {
		return false, storageError("check weekly bucket", err)
	}
	if exists {
		return false, nil
	}

	views, clicks, err := a.countWindow(ctx, start, end)
	if err != nil {
		return false, err
	}

	bucket := &model.WeeklyBucket{
		WeekStart: start,
		WeekEnd:   end,
		Views:     views,
		Clicks:    clicks,
		ClickRate: clickRate(clicks, views),
	}
	if err := a.mysqlRepo.SaveWeeklyBucket(ctx, bucket); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, storageError("save weekly bucket", err)
	}

	trimmed, err := a.mysqlRepo.TrimWeeklyBuckets(ctx, a.settings.WeeklyRetention)
	if err != nil {
		return true, storageError("trim weekly buckets", err)
	}

	log.Info().
		Time("week_start", start).
		Int64("views", views).
		Int64("clicks", clicks).
		Float64("click_rate", bucket.ClickRate).
		Int64("trimmed", trimmed).
		Msg("Weekly bucket stored")
	return true, nil
}

func (a *Aggregator) countWindow(ctx context.Context, start, end time.Time) (int64, int64, error) {
	views, err := a.mysqlRepo.CountViewEvents(ctx, start, end)
	if err != nil {
		return 0, 0, storageError("count view events", err)
	}
	clicks, err := a.mysqlRepo.CountClickEvents(ctx, start, end)
	if err != nil {
		return 0, 0, storageError("count click events", err)
	}
	return views, clicks, nil
}

// reconcileToday runs after an event is stored; its failure does not fail the event
func (a *Aggregator) reconcileToday(ctx context.Context, now time.Time) {
	if _, err := a.ReconcileDaily(ctx, now); err != nil {
		log.Error().Err(err).Msg("Failed to reconcile daily bucket")
	}
}

package repository

import (
	"context"
	"time"

	"linkhub/internal/config"
	"linkhub/internal/model"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations for links, the event log and rollups
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository. Connection or migration
// failures terminate the process.
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(withParseTime(cfg.DSN)), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	if err := db.AutoMigrate(
		&model.Link{},
		&model.ViewEvent{},
		&model.ClickEvent{},
		&model.AnalyticsSummary{},
		&model.DailyBucket{},
		&model.WeeklyBucket{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// withParseTime turns on parseTime so datetime columns scan into time.Time.
// A DSN the driver cannot parse is returned unchanged and fails at connect.
func withParseTime(dsn string) string {
	if dsn == "" {
		return dsn
	}
	parsed, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return dsn
	}
	if !parsed.ParseTime {
		log.Warn().Msg("MySQL DSN has no parseTime=true, enabling it")
		parsed.ParseTime = true
	}
	return parsed.FormatDSN()
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// ListLinks returns all links ordered by creation time
func (r *MySQLRepository) ListLinks(ctx context.Context) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&links).Error
	return links, err
}

// ListLinksByClicks returns links ordered by click count, most clicked first.
// A non-positive limit returns every link.
func (r *MySQLRepository) ListLinksByClicks(ctx context.Context, limit int) ([]model.Link, error) {
	var links []model.Link
	query := r.db.WithContext(ctx).Order("click_count DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&links).Error
	return links, err
}

// GetLink retrieves a link by id
func (r *MySQLRepository) GetLink(ctx context.Context, id string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// CountLinks returns the number of stored links
func (r *MySQLRepository) CountLinks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Link{}).Count(&count).Error
	return count, err
}

// CreateLink inserts a link
func (r *MySQLRepository) CreateLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// CreateLinks inserts several links in one statement
func (r *MySQLRepository) CreateLinks(ctx context.Context, links []model.Link) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

// UpdateLink applies the given column values to an existing link
func (r *MySQLRepository) UpdateLink(ctx context.Context, link *model.Link, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(link).Updates(fields).Error
}

// DeleteLink deletes a link and reports how many rows were removed
func (r *MySQLRepository) DeleteLink(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Link{})
	return result.RowsAffected, result.Error
}

// IncrementLinkClicks atomically adds one click to a link
func (r *MySQLRepository) IncrementLinkClicks(ctx context.Context, id string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"click_count": gorm.Expr("click_count + ?", 1),
			"updated_at":  at,
		})
	return result.RowsAffected, result.Error
}

// ResetLinkClicks sets every link's click count back to zero
func (r *MySQLRepository) ResetLinkClicks(ctx context.Context, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("1 = 1").
		UpdateColumns(map[string]interface{}{
			"click_count": 0,
			"updated_at":  at,
		})
	return result.RowsAffected, result.Error
}

// SaveViewEvent appends a view event
func (r *MySQLRepository) SaveViewEvent(ctx context.Context, event *model.ViewEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// SaveClickEvent appends a click event
func (r *MySQLRepository) SaveClickEvent(ctx context.Context, event *model.ClickEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// CountViewEvents counts view events with from <= timestamp <= to
func (r *MySQLRepository) CountViewEvents(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ViewEvent{}).
		Where("timestamp >= ? AND timestamp <= ?", from, to).
		Count(&count).Error
	return count, err
}

// CountClickEvents counts click events with from <= timestamp <= to
func (r *MySQLRepository) CountClickEvents(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ClickEvent{}).
		Where("timestamp >= ? AND timestamp <= ?", from, to).
		Count(&count).Error
	return count, err
}

// GetClickEventsSince returns a link's click events at or after since, oldest first
func (r *MySQLRepository) GetClickEventsSince(ctx context.Context, linkID string, since time.Time) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	err := r.db.WithContext(ctx).
		Where("link_id = ? AND timestamp >= ?", linkID, since).
		Order("timestamp ASC").
		Find(&events).Error
	return events, err
}

// GetRecentClickEvents returns a link's most recent click events, newest first
func (r *MySQLRepository) GetRecentClickEvents(ctx context.Context, linkID string, limit int) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	query := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("timestamp DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&events).Error
	return events, err
}

// DeleteClickEvents removes every click event of a link
func (r *MySQLRepository) DeleteClickEvents(ctx context.Context, linkID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("link_id = ?", linkID).Delete(&model.ClickEvent{})
	return result.RowsAffected, result.Error
}

// EnsureSummary returns the summary row, creating it when missing
func (r *MySQLRepository) EnsureSummary(ctx context.Context, at time.Time) (*model.AnalyticsSummary, error) {
	summary := model.AnalyticsSummary{}
	err := r.db.WithContext(ctx).
		Where(model.AnalyticsSummary{ID: model.SummaryID}).
		Attrs(model.AnalyticsSummary{LastUpdated: at}).
		FirstOrCreate(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetSummary returns the summary row
func (r *MySQLRepository) GetSummary(ctx context.Context) (*model.AnalyticsSummary, error) {
	var summary model.AnalyticsSummary
	err := r.db.WithContext(ctx).Where("id = ?", model.SummaryID).First(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// IncrementTotalViews atomically adds one view to the running totals
func (r *MySQLRepository) IncrementTotalViews(ctx context.Context, at time.Time) error {
	return r.incrementTotal(ctx, "total_views", at)
}

// IncrementTotalClicks atomically adds one click to the running totals
func (r *MySQLRepository) IncrementTotalClicks(ctx context.Context, at time.Time) error {
	return r.incrementTotal(ctx, "total_clicks", at)
}

func (r *MySQLRepository) incrementTotal(ctx context.Context, column string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.AnalyticsSummary{}).
		Where("id = ?", model.SummaryID).
		UpdateColumns(map[string]interface{}{
			column:         gorm.Expr(column+" + ?", 1),
			"last_updated": at,
		}).Error
}

// ResetTotals zeroes the running totals
func (r *MySQLRepository) ResetTotals(ctx context.Context, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.AnalyticsSummary{}).
		Where("id = ?", model.SummaryID).
		UpdateColumns(map[string]interface{}{
			"total_views":  0,
			"total_clicks": 0,
			"last_updated": at,
		}).Error
}

// DailyBucketExists reports whether a bucket for day (YYYY-MM-DD) is stored
func (r *MySQLRepository) DailyBucketExists(ctx context.Context, day string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.DailyBucket{}).
		Where("day = ?", day).
		Count(&count).Error
	return count > 0, err
}

// SaveDailyBucket appends a daily bucket
func (r *MySQLRepository) SaveDailyBucket(ctx context.Context, bucket *model.DailyBucket) error {
	return r.db.WithContext(ctx).Create(bucket).Error
}

// ListDailyBuckets returns the newest limit daily buckets in insertion order
func (r *MySQLRepository) ListDailyBuckets(ctx context.Context, limit int) ([]model.DailyBucket, error) {
	var buckets []model.DailyBucket
	query := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&buckets).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(buckets)-1; i < j; i, j = i+1, j-1 {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	}
	return buckets, nil
}

// TrimDailyBuckets deletes the oldest daily buckets so at most keep remain
func (r *MySQLRepository) TrimDailyBuckets(ctx context.Context, keep int) (int64, error) {
	return r.trimBuckets(ctx, &model.DailyBucket{}, keep)
}

// WeeklyBucketExists reports whether a bucket starting at weekStart is stored
func (r *MySQLRepository) WeeklyBucketExists(ctx context.Context, weekStart time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.WeeklyBucket{}).
		Where("week_start = ?", weekStart).
		Count(&count).Error
	return count > 0, err
}

// SaveWeeklyBucket appends a weekly bucket
func (r *MySQLRepository) SaveWeeklyBucket(ctx context.Context, bucket *model.WeeklyBucket) error {
	return r.db.WithContext(ctx).Create(bucket).Error
}

// ListWeeklyBuckets returns the newest limit weekly buckets in insertion order
func (r *MySQLRepository) ListWeeklyBuckets(ctx context.Context, limit int) ([]model.WeeklyBucket, error) {
	var buckets []model.WeeklyBucket
	query := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&buckets).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(buckets)-1; i < j; i, j = i+1, j-1 {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	}
	return buckets, nil
}

// TrimWeeklyBuckets deletes the oldest weekly buckets so at most keep remain
func (r *MySQLRepository) TrimWeeklyBuckets(ctx context.Context, keep int) (int64, error) {
	return r.trimBuckets(ctx, &model.WeeklyBucket{}, keep)
}

// trimBuckets finds the id of the keep-th newest row and deletes everything older
func (r *MySQLRepository) trimBuckets(ctx context.Context, table interface{}, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).
		Model(table).
		Order("id DESC").
		Offset(keep-1).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Where("id < ?", ids[0]).Delete(table)
	return result.RowsAffected, result.Error
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

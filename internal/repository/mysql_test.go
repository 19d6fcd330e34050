package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"linkhub/internal/model"
)

var linkColumns = []string{"id", "title", "url", "type", "click_count", "gradient", "created_at", "updated_at"}

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestMySQLRepository_ListLinks(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("list links ordered by creation", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(linkColumns).
			AddRow("a", "Portfolio", "https://a.dev", "website", 4, "from-blue-500 to-purple-600", now.Add(-time.Hour), now).
			AddRow("b", "GitHub", "https://github.com/a", "social", 1, "from-gray-700 to-gray-900", now, now)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` ORDER BY created_at ASC")).
			WillReturnRows(rows)

		links, err := repo.ListLinks(ctx)
		assert.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "a", links[0].ID)
		assert.Equal(t, int64(4), links[0].ClickCount)
		assert.Equal(t, model.LinkTypeSocial, links[1].Type)
	})

	t.Run("list links with error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` ORDER BY created_at ASC")).
			WillReturnError(assert.AnError)

		_, err := repo.ListLinks(ctx)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepository_ListLinksByClicks(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("with limit", func(t *testing.T) {
		rows := sqlmock.NewRows(linkColumns).
			AddRow("a", "Portfolio", "https://a.dev", "website", 9, "g", time.Now(), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` ORDER BY click_count DESC LIMIT ?")).
			WithArgs(5).
			WillReturnRows(rows)

		links, err := repo.ListLinksByClicks(ctx, 5)
		assert.NoError(t, err)
		assert.Len(t, links, 1)
	})

	t.Run("without limit", func(t *testing.T) {
		rows := sqlmock.NewRows(linkColumns)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` ORDER BY click_count DESC")).
			WillReturnRows(rows)

		links, err := repo.ListLinksByClicks(ctx, 0)
		assert.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestMySQLRepository_GetLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("get existing link", func(t *testing.T) {
		rows := sqlmock.NewRows(linkColumns).
			AddRow("abc", "Test", "https://x.com", "website", 0, "g", time.Now(), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE id = ? ORDER BY `links`.`id` LIMIT ?")).
			WithArgs("abc", 1).
			WillReturnRows(rows)

		link, err := repo.GetLink(ctx, "abc")
		assert.NoError(t, err)
		require.NotNil(t, link)
		assert.Equal(t, "Test", link.Title)
		assert.Equal(t, "https://x.com", link.URL)
	})

	t.Run("get non-existent link", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE id = ? ORDER BY `links`.`id` LIMIT ?")).
			WithArgs("missing", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		link, err := repo.GetLink(ctx, "missing")
		assert.Nil(t, link)
		assert.Equal(t, gorm.ErrRecordNotFound, err)
	})
}

func TestMySQLRepository_CountLinks(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `links`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountLinks(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestMySQLRepository_CreateLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("create link successfully", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateLink(ctx, &model.Link{ID: "abc", Title: "Test", URL: "https://x.com", Type: model.LinkTypeWebsite})
		assert.NoError(t, err)
	})

	t.Run("create link with error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.CreateLink(ctx, &model.Link{ID: "abc"})
		assert.Error(t, err)
	})

	t.Run("create empty batch is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.CreateLinks(ctx, nil))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepository_UpdateLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	link := &model.Link{ID: "abc", Title: "Old"}
	err := repo.UpdateLink(context.Background(), link, map[string]interface{}{"title": "New"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepository_DeleteLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("delete existing link", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `links` WHERE id = ?")).
			WithArgs("abc").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := repo.DeleteLink(ctx, "abc")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("delete missing link", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `links` WHERE id = ?")).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		affected, err := repo.DeleteLink(ctx, "missing")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestMySQLRepository_IncrementLinkClicks(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `click_count`=click_count + ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.IncrementLinkClicks(context.Background(), "abc", time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepository_ResetLinkClicks(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `click_count`=?")).
		WillReturnResult(sqlmock.NewResult(0, 6))
	mock.ExpectCommit()

	affected, err := repo.ResetLinkClicks(context.Background(), time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(6), affected)
}

func TestMySQLRepository_SaveEvents(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("save view event", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `view_events`")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveViewEvent(ctx, &model.ViewEvent{ID: "v1", Timestamp: time.Now(), IP: "10.0.0.1"})
		assert.NoError(t, err)
	})

	t.Run("save click event", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `click_events`")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveClickEvent(ctx, &model.ClickEvent{ID: "c1", LinkID: "abc", Timestamp: time.Now()})
		assert.NoError(t, err)
	})

	t.Run("save click event with error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `click_events`")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.SaveClickEvent(ctx, &model.ClickEvent{ID: "c2", LinkID: "abc", Timestamp: time.Now()})
		assert.Error(t, err)
	})
}

func TestMySQLRepository_CountEvents(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()
	from := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Millisecond)

	t.Run("count views in window", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `view_events` WHERE timestamp >= ? AND timestamp <= ?")).
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		count, err := repo.CountViewEvents(ctx, from, to)
		assert.NoError(t, err)
		assert.Equal(t, int64(12), count)
	})

	t.Run("count clicks in window", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `click_events` WHERE timestamp >= ? AND timestamp <= ?")).
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountClickEvents(ctx, from, to)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestMySQLRepository_ClickEventQueries(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()
	columns := []string{"id", "link_id", "timestamp", "user_agent", "ip", "referrer"}
	now := time.Now()

	t.Run("events since", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow("c1", "abc", now.Add(-2*time.Hour), "ua", "10.0.0.1", "").
			AddRow("c2", "abc", now.Add(-time.Hour), "ua", "10.0.0.2", "https://google.com")

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `click_events` WHERE link_id = ? AND timestamp >= ? ORDER BY timestamp ASC")).
			WillReturnRows(rows)

		events, err := repo.GetClickEventsSince(ctx, "abc", now.Add(-30*24*time.Hour))
		assert.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "c1", events[0].ID)
	})

	t.Run("recent events with limit", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow("c2", "abc", now, "ua", "10.0.0.2", "")

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `click_events` WHERE link_id = ? ORDER BY timestamp DESC LIMIT ?")).
			WithArgs("abc", 50).
			WillReturnRows(rows)

		events, err := repo.GetRecentClickEvents(ctx, "abc", 50)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("delete events of a link", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `click_events` WHERE link_id = ?")).
			WithArgs("abc").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		deleted, err := repo.DeleteClickEvents(ctx, "abc")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})
}

func TestMySQLRepository_Summary(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()
	columns := []string{"id", "total_views", "total_clicks", "last_updated"}

	t.Run("ensure summary returns existing row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `analytics_summary`")).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 40, 9, time.Now()))

		summary, err := repo.EnsureSummary(ctx, time.Now())
		assert.NoError(t, err)
		assert.Equal(t, int64(40), summary.TotalViews)
		assert.Equal(t, int64(9), summary.TotalClicks)
	})

	t.Run("ensure summary creates missing row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `analytics_summary`")).
			WillReturnRows(sqlmock.NewRows(columns))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `analytics_summary`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		summary, err := repo.EnsureSummary(ctx, time.Now())
		assert.NoError(t, err)
		assert.Equal(t, int64(model.SummaryID), summary.ID)
		assert.Equal(t, int64(0), summary.TotalViews)
	})

	t.Run("get summary", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `analytics_summary` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 5, 2, time.Now()))

		summary, err := repo.GetSummary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), summary.TotalViews)
	})

	t.Run("increment total views", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `analytics_summary` SET `last_updated`=?,`total_views`=total_views + ?")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.IncrementTotalViews(ctx, time.Now()))
	})

	t.Run("increment total clicks", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `analytics_summary` SET `last_updated`=?,`total_clicks`=total_clicks + ?")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.IncrementTotalClicks(ctx, time.Now()))
	})

	t.Run("reset totals", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `analytics_summary` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.ResetTotals(ctx, time.Now()))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepository_DailyBuckets(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `daily_buckets` WHERE day = ?")).
			WithArgs("2024-05-05").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.DailyBucketExists(ctx, "2024-05-05")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("bucket missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `daily_buckets` WHERE day = ?")).
			WithArgs("2024-05-06").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.DailyBucketExists(ctx, "2024-05-06")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("save bucket", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `daily_buckets`")).
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectCommit()

		bucket := &model.DailyBucket{Day: "2024-05-06", Date: time.Now(), Views: 4, Clicks: 1}
		assert.NoError(t, repo.SaveDailyBucket(ctx, bucket))
		assert.Equal(t, int64(3), bucket.ID)
	})

	t.Run("list returns insertion order", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "day", "date", "views", "clicks"}).
			AddRow(3, "2024-05-06", time.Now(), 4, 1).
			AddRow(2, "2024-05-05", time.Now(), 2, 0)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `daily_buckets` ORDER BY id DESC LIMIT ?")).
			WithArgs(30).
			WillReturnRows(rows)

		buckets, err := repo.ListDailyBuckets(ctx, 30)
		assert.NoError(t, err)
		require.Len(t, buckets, 2)
		assert.Equal(t, "2024-05-05", buckets[0].Day)
		assert.Equal(t, "2024-05-06", buckets[1].Day)
	})

	t.Run("trim deletes rows older than the keep-th newest", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `daily_buckets` ORDER BY id DESC")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `daily_buckets` WHERE id < ?")).
			WithArgs(12).
			WillReturnResult(sqlmock.NewResult(0, 11))
		mock.ExpectCommit()

		deleted, err := repo.TrimDailyBuckets(ctx, 30)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), deleted)
	})

	t.Run("trim with fewer rows than keep", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `daily_buckets` ORDER BY id DESC")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		deleted, err := repo.TrimDailyBuckets(ctx, 30)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepository_WeeklyBuckets(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()
	weekStart := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)

	t.Run("bucket exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `weekly_buckets` WHERE week_start = ?")).
			WithArgs(weekStart).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.WeeklyBucketExists(ctx, weekStart)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("save bucket", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `weekly_buckets`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.SaveWeeklyBucket(ctx, &model.WeeklyBucket{WeekStart: weekStart, WeekEnd: weekStart.AddDate(0, 0, 7), Views: 10, Clicks: 3, ClickRate: 30})
		assert.NoError(t, err)
	})

	t.Run("list weekly buckets", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "week_start", "week_end", "views", "clicks", "click_rate"}).
			AddRow(2, weekStart, weekStart.AddDate(0, 0, 7), 10, 3, 30.0).
			AddRow(1, weekStart.AddDate(0, 0, -7), weekStart, 4, 0, 0.0)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `weekly_buckets` ORDER BY id DESC LIMIT ?")).
			WithArgs(12).
			WillReturnRows(rows)

		buckets, err := repo.ListWeeklyBuckets(ctx, 12)
		assert.NoError(t, err)
		require.Len(t, buckets, 2)
		assert.Equal(t, int64(1), buckets[0].ID)
		assert.Equal(t, 30.0, buckets[1].ClickRate)
	})

	t.Run("trim with non-positive keep does nothing", func(t *testing.T) {
		deleted, err := repo.TrimWeeklyBuckets(ctx, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepository_GetDB(t *testing.T) {
	db, _ := newTestDB(t)

	repo := &MySQLRepository{db: db}
	assert.Equal(t, db, repo.GetDB())
}

func TestMySQLRepository_Close(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}

	mock.ExpectClose()

	err := repo.Close()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithParseTime(t *testing.T) {
	t.Run("enables parseTime when missing", func(t *testing.T) {
		dsn := withParseTime("linkhub:secret@tcp(localhost:3306)/linkhub?charset=utf8mb4")

		parsed, err := mysqldriver.ParseDSN(dsn)
		require.NoError(t, err)
		assert.True(t, parsed.ParseTime)
		assert.Equal(t, "linkhub", parsed.DBName)
		assert.Equal(t, "localhost:3306", parsed.Addr)
		assert.Equal(t, time.UTC, parsed.Loc)
	})

	t.Run("keeps an explicit location", func(t *testing.T) {
		dsn := withParseTime("linkhub:secret@tcp(db:3306)/linkhub?parseTime=true&loc=UTC")

		parsed, err := mysqldriver.ParseDSN(dsn)
		require.NoError(t, err)
		assert.True(t, parsed.ParseTime)
		assert.Equal(t, "db:3306", parsed.Addr)
	})

	t.Run("leaves empty and unparsable DSNs alone", func(t *testing.T) {
		assert.Equal(t, "", withParseTime(""))
		assert.Equal(t, "not a dsn", withParseTime("not a dsn"))
	})
}

package service

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"linkhub/internal/model"

	"gorm.io/gorm"
)

// memStore is an in-memory MySQLRepositoryInterface with the same ordering,
// counting and trimming rules as the MySQL repository
type memStore struct {
	mu       sync.Mutex
	links    map[string]*model.Link
	views    []model.ViewEvent
	clicks   []model.ClickEvent
	summary  *model.AnalyticsSummary
	daily    []model.DailyBucket
	weekly   []model.WeeklyBucket
	bucketID int64
}

func newMemStore() *memStore {
	return &memStore{links: make(map[string]*model.Link)}
}

func (s *memStore) ListLinks(ctx context.Context) ([]model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := s.snapshotLinks()
	sort.SliceStable(links, func(i, j int) bool { return links[i].CreatedAt.Before(links[j].CreatedAt) })
	return links, nil
}

func (s *memStore) ListLinksByClicks(ctx context.Context, limit int) ([]model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := s.snapshotLinks()
	sort.SliceStable(links, func(i, j int) bool { return links[i].ClickCount > links[j].ClickCount })
	if limit > 0 && len(links) > limit {
		links = links[:limit]
	}
	return links, nil
}

func (s *memStore) snapshotLinks() []model.Link {
	links := make([]model.Link, 0, len(s.links))
	for _, l := range s.links {
		links = append(links, *l)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links
}

func (s *memStore) GetLink(ctx context.Context, id string) (*model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.links[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *memStore) CountLinks(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.links)), nil
}

func (s *memStore) CreateLink(ctx context.Context, link *model.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[link.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *link
	s.links[link.ID] = &cp
	return nil
}

func (s *memStore) CreateLinks(ctx context.Context, links []model.Link) error {
	for i := range links {
		if err := s.CreateLink(ctx, &links[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStore) UpdateLink(ctx context.Context, link *model.Link, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.links[link.ID]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			l.Title = v.(string)
		case "url":
			l.URL = v.(string)
		case "type":
			l.Type = v.(model.LinkType)
		case "gradient":
			l.Gradient = v.(string)
		case "updated_at":
			l.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (s *memStore) DeleteLink(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[id]; !ok {
		return 0, nil
	}
	delete(s.links, id)
	return 1, nil
}

func (s *memStore) IncrementLinkClicks(ctx context.Context, id string, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.links[id]
	if !ok {
		return 0, nil
	}
	l.ClickCount++
	l.UpdatedAt = at
	return 1, nil
}

func (s *memStore) SaveViewEvent(ctx context.Context, event *model.ViewEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = append(s.views, *event)
	return nil
}

func (s *memStore) SaveClickEvent(ctx context.Context, event *model.ClickEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clicks = append(s.clicks, *event)
	return nil
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func (s *memStore) CountViewEvents(ctx context.Context, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, v := range s.views {
		if inWindow(v.Timestamp, from, to) {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CountClickEvents(ctx context.Context, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, c := range s.clicks {
		if inWindow(c.Timestamp, from, to) {
			n++
		}
	}
	return n, nil
}

func (s *memStore) GetClickEventsSince(ctx context.Context, linkID string, since time.Time) ([]model.ClickEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ClickEvent
	for _, c := range s.clicks {
		if c.LinkID == linkID && !c.Timestamp.Before(since) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memStore) GetRecentClickEvents(ctx context.Context, linkID string, limit int) ([]model.ClickEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ClickEvent
	for i := len(s.clicks) - 1; i >= 0; i-- {
		if s.clicks[i].LinkID == linkID {
			out = append(out, s.clicks[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memStore) DeleteClickEvents(ctx context.Context, linkID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.clicks[:0]
	var removed int64
	for _, c := range s.clicks {
		if c.LinkID == linkID {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	s.clicks = kept
	return removed, nil
}

func (s *memStore) EnsureSummary(ctx context.Context, at time.Time) (*model.AnalyticsSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		s.summary = &model.AnalyticsSummary{ID: model.SummaryID, LastUpdated: at}
	}
	cp := *s.summary
	return &cp, nil
}

func (s *memStore) GetSummary(ctx context.Context) (*model.AnalyticsSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s.summary
	return &cp, nil
}

func (s *memStore) IncrementTotalViews(ctx context.Context, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary != nil {
		s.summary.TotalViews++
		s.summary.LastUpdated = at
	}
	return nil
}

func (s *memStore) IncrementTotalClicks(ctx context.Context, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary != nil {
		s.summary.TotalClicks++
		s.summary.LastUpdated = at
	}
	return nil
}

func (s *memStore) DailyBucketExists(ctx context.Context, day string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.daily {
		if b.Day == day {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) SaveDailyBucket(ctx context.Context, bucket *model.DailyBucket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.daily {
		if b.Day == bucket.Day {
			return gorm.ErrDuplicatedKey
		}
	}
	s.bucketID++
	bucket.ID = s.bucketID
	s.daily = append(s.daily, *bucket)
	return nil
}

func (s *memStore) ListDailyBuckets(ctx context.Context, limit int) ([]model.DailyBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.daily
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return append([]model.DailyBucket(nil), out...), nil
}

func (s *memStore) TrimDailyBuckets(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if keep <= 0 || len(s.daily) <= keep {
		return 0, nil
	}
	removed := len(s.daily) - keep
	s.daily = append([]model.DailyBucket(nil), s.daily[removed:]...)
	return int64(removed), nil
}

func (s *memStore) WeeklyBucketExists(ctx context.Context, weekStart time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.weekly {
		if b.WeekStart.Equal(weekStart) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) SaveWeeklyBucket(ctx context.Context, bucket *model.WeeklyBucket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.weekly {
		if b.WeekStart.Equal(bucket.WeekStart) {
			return gorm.ErrDuplicatedKey
		}
	}
	s.bucketID++
	bucket.ID = s.bucketID
	s.weekly = append(s.weekly, *bucket)
	return nil
}

func (s *memStore) ListWeeklyBuckets(ctx context.Context, limit int) ([]model.WeeklyBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.weekly
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return append([]model.WeeklyBucket(nil), out...), nil
}

func (s *memStore) TrimWeeklyBuckets(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if keep <= 0 || len(s.weekly) <= keep {
		return 0, nil
	}
	removed := len(s.weekly) - keep
	s.weekly = append([]model.WeeklyBucket(nil), s.weekly[removed:]...)
	return int64(removed), nil
}

// clock is a settable time source for the services under test
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func seqIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

package service

import (
	"math"
	"time"
)

const dayKeyLayout = "2006-01-02"

// dayWindow returns local midnight and the last millisecond of the day containing t
func dayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// weekWindow returns Sunday 00:00:00.000 and Saturday 23:59:59.999 of the week containing t
func weekWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// clickRate is clicks per hundred views, 0 unless both sides are positive
func clickRate(clicks, views int64) float64 {
	if clicks <= 0 || views <= 0 {
		return 0
	}
	return round2(float64(clicks) / float64(views) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

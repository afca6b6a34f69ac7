package analytics

import (
	"slices"
	"time"

	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/timerange"
)

const (
	GranularityHour  = "hour"
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"
)

// trendSpan is the number of buckets in each half of the trend comparison.
const trendSpan = 7

const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// PeriodStart returns the UTC start of the calendar bucket containing t. Weeks
// start on Monday.
func PeriodStart(t time.Time, granularity string) time.Time {
	t = t.UTC()
	switch granularity {
	case GranularityHour:
		return t.Truncate(time.Hour)
	case GranularityWeek:
		day := timerange.StartOfDay(t)
		return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	case GranularityMonth:
		y, m, _ := t.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	default:
		return timerange.StartOfDay(t)
	}
}

func periodLabel(start time.Time, granularity string) string {
	switch granularity {
	case GranularityHour:
		return start.Format("2006-01-02T15:00")
	case GranularityMonth:
		return start.Format("2006-01")
	default:
		return start.Format(time.DateOnly)
	}
}

type periodGroup struct {
	bucket domain.PeriodBucket
	actors actorSet
}

// TimeSeries groups events into calendar buckets sorted ascending. Only periods
// with at least one event produce a bucket.
func TimeSeries(events []domain.InteractionEvent, granularity string) domain.TimeSeriesReport {
	switch granularity {
	case GranularityHour, GranularityDay, GranularityWeek, GranularityMonth:
	default:
		granularity = GranularityDay
	}

	groups := make(map[time.Time]*periodGroup)
	for _, e := range events {
		start := PeriodStart(e.Timestamp, granularity)
		g, ok := groups[start]
		if !ok {
			g = &periodGroup{
				bucket: domain.PeriodBucket{Period: periodLabel(start, granularity), Start: start},
				actors: make(actorSet),
			}
			groups[start] = g
		}
		g.bucket.TotalClicks++
		g.actors.add(e.ActorID)
	}

	buckets := make([]domain.PeriodBucket, 0, len(groups))
	for _, g := range groups {
		b := g.bucket
		b.UniqueClicks = len(g.actors)
		buckets = append(buckets, b)
	}
	slices.SortFunc(buckets, func(a, b domain.PeriodBucket) int {
		return a.Start.Compare(b.Start)
	})

	return domain.TimeSeriesReport{
		Granularity: granularity,
		Buckets:     buckets,
		TotalClicks: len(events),
		Trend:       Trend(buckets),
	}
}

// Trend compares the mean of the last 7 buckets with the mean of the 7 before
// them. The percentage is 0 when fewer than 14 buckets exist or the earlier
// mean is 0.
func Trend(buckets []domain.PeriodBucket) domain.Trend {
	trend := domain.Trend{Direction: TrendFlat}
	if len(buckets) < 2*trendSpan {
		return trend
	}

	n := len(buckets)
	trend.RecentAverage = meanClicks(buckets[n-trendSpan:])
	trend.PreviousAverage = meanClicks(buckets[n-2*trendSpan : n-trendSpan])
	if trend.PreviousAverage == 0 {
		return trend
	}

	trend.Percentage = (trend.RecentAverage - trend.PreviousAverage) / trend.PreviousAverage * 100
	switch {
	case trend.Percentage > 0:
		trend.Direction = TrendUp
	case trend.Percentage < 0:
		trend.Direction = TrendDown
	}
	return trend
}

func meanClicks(buckets []domain.PeriodBucket) float64 {
	sum := 0
	for _, b := range buckets {
		sum += b.TotalClicks
	}
	return float64(sum) / float64(len(buckets))
}

package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"kucukaslan/interactions/domain"
)

const (
	GroupByHour = "hour"
	GroupByDay  = "day"
	GroupByAll  = "all"
)

type slotCounts struct {
	interactions int
	views        int
	actors       actorSet
}

// PeakHours buckets events by UTC hour of day and UTC weekday. All 24 hours and
// all 7 days are always present. When views is nil the view count of every slot
// equals its interaction count, which yields a 100% engagement rate for any
// active slot. When views is given, each slot is measured against its own view
// markers only: a slot with interactions but no views reports Views 0 and an
// EngagementRate of 0, since the rate is undefined there.
func PeakHours(events, views []domain.InteractionEvent, groupBy string) domain.PeakReport {
	var hours [24]slotCounts
	var days [7]slotCounts
	for i := range hours {
		hours[i].actors = make(actorSet)
	}
	for i := range days {
		days[i].actors = make(actorSet)
	}

	for _, e := range events {
		ts := e.Timestamp.UTC()
		h, d := &hours[ts.Hour()], &days[int(ts.Weekday())]
		h.interactions++
		d.interactions++
		h.actors.add(e.ActorID)
		d.actors.add(e.ActorID)
	}

	if views == nil {
		for i := range hours {
			hours[i].views = hours[i].interactions
		}
		for i := range days {
			days[i].views = days[i].interactions
		}
	} else {
		for _, v := range views {
			ts := v.Timestamp.UTC()
			hours[ts.Hour()].views++
			days[int(ts.Weekday())].views++
		}
	}

	report := domain.PeakReport{GroupBy: normalizeGroupBy(groupBy)}
	totalViews := 0
	for i, s := range hours {
		report.Hours[i] = domain.HourBucket{
			Hour:           i,
			Interactions:   s.interactions,
			Views:          s.views,
			UniqueActors:   len(s.actors),
			EngagementRate: engagement(s.interactions, s.views),
		}
		report.Insights.TotalInteractions += s.interactions
		totalViews += s.views
	}
	for i, s := range days {
		report.Days[i] = domain.DayBucket{
			Weekday:        i,
			Name:           time.Weekday(i).String(),
			Interactions:   s.interactions,
			Views:          s.views,
			UniqueActors:   len(s.actors),
			EngagementRate: engagement(s.interactions, s.views),
		}
	}

	hourCounts := make([]int, len(hours))
	for i, s := range hours {
		hourCounts[i] = s.interactions
	}
	dayCounts := make([]int, len(days))
	for i, s := range days {
		dayCounts[i] = s.interactions
	}

	report.Insights.PeakHour, report.Insights.QuietestHour = peakAndQuietest(hourCounts)
	report.Insights.PeakDay, report.Insights.QuietestDay = peakAndQuietest(dayCounts)
	report.Insights.AvgViewsPerHour = float64(totalViews) / float64(len(hours))

	if report.GroupBy == GroupByDay {
		report.Ranked = rankSlots(dayCounts, func(i int) string { return time.Weekday(i).String() })
	} else {
		report.Ranked = rankSlots(hourCounts, func(i int) string { return fmt.Sprintf("%02d:00", i) })
	}
	return report
}

func normalizeGroupBy(groupBy string) string {
	switch groupBy {
	case GroupByDay, GroupByAll:
		return groupBy
	default:
		return GroupByHour
	}
}

func engagement(interactions, views int) float64 {
	if views == 0 {
		return 0
	}
	return float64(interactions) / float64(views) * 100
}

// peakAndQuietest returns the slots with the highest and lowest count. Empty
// slots never qualify as quietest unless every slot is empty. Ties go to the
// earliest slot.
func peakAndQuietest(counts []int) (peak, quietest int) {
	quietest = -1
	for i, c := range counts {
		if c > counts[peak] {
			peak = i
		}
		if c > 0 && (quietest < 0 || c < counts[quietest]) {
			quietest = i
		}
	}
	if quietest < 0 {
		quietest = 0
	}
	return peak, quietest
}

// rankSlots lists the non-empty slots by count desc, then slot asc.
func rankSlots(counts []int, label func(int) string) []domain.RankedSlot {
	ranked := make([]domain.RankedSlot, 0, len(counts))
	for i, c := range counts {
		if c == 0 {
			continue
		}
		ranked = append(ranked, domain.RankedSlot{Slot: i, Label: label(i), Interactions: c})
	}
	slices.SortStableFunc(ranked, func(a, b domain.RankedSlot) int {
		return cmp.Compare(b.Interactions, a.Interactions)
	})
	return ranked
}

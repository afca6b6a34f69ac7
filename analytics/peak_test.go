package analytics

import (
	"testing"

	"kucukaslan/interactions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peakFixture() []domain.InteractionEvent {
	return []domain.InteractionEvent{
		click("a", "t", at(0, 14)),
		click("b", "t", at(0, 14)),
		click("a", "t", at(7, 14)),
		click("c", "t", at(0, 20)),
		click("c", "t", at(7, 20)),
		click("d", "t", at(1, 9)),
	}
}

func TestPeakHours_AlwaysReportsEverySlot(t *testing.T) {
	report := PeakHours(peakFixture(), nil, "")

	assert.Len(t, report.Hours, 24)
	assert.Len(t, report.Days, 7)
	for i, h := range report.Hours {
		assert.Equal(t, i, h.Hour)
	}
	assert.Equal(t, "Sunday", report.Days[0].Name)
	assert.Equal(t, GroupByHour, report.GroupBy)
}

func TestPeakHours_Insights(t *testing.T) {
	report := PeakHours(peakFixture(), nil, GroupByHour)

	assert.Equal(t, 3, report.Hours[14].Interactions)
	assert.Equal(t, 2, report.Hours[14].UniqueActors)
	assert.Equal(t, 14, report.Insights.PeakHour)
	assert.Equal(t, 9, report.Insights.QuietestHour)
	assert.Equal(t, 1, report.Insights.PeakDay)
	assert.Equal(t, 2, report.Insights.QuietestDay)
	assert.Equal(t, 6, report.Insights.TotalInteractions)
	assert.InDelta(t, 0.25, report.Insights.AvgViewsPerHour, 1e-9)

	// Quietest never points at an empty slot while activity exists.
	assert.NotZero(t, report.Hours[report.Insights.QuietestHour].Interactions)
	assert.NotZero(t, report.Days[report.Insights.QuietestDay].Interactions)
}

func TestPeakHours_EngagementWithoutViewsIsFull(t *testing.T) {
	report := PeakHours(peakFixture(), nil, GroupByHour)

	assert.Equal(t, 100.0, report.Hours[14].EngagementRate)
	assert.Equal(t, 0.0, report.Hours[3].EngagementRate)
}

func TestPeakHours_EngagementAgainstViews(t *testing.T) {
	views := []domain.InteractionEvent{
		view("a", "p", at(0, 14)),
		view("b", "p", at(0, 14)),
		view("c", "p", at(0, 14)),
		view("d", "p", at(0, 14)),
	}

	report := PeakHours(peakFixture(), views, GroupByHour)

	assert.Equal(t, 4, report.Hours[14].Views)
	assert.InDelta(t, 75.0, report.Hours[14].EngagementRate, 1e-9)
	assert.InDelta(t, 4.0/24.0, report.Insights.AvgViewsPerHour, 1e-9)
}

func TestPeakHours_ActiveSlotWithoutViewsReportsZero(t *testing.T) {
	views := []domain.InteractionEvent{view("a", "p", at(0, 14))}

	report := PeakHours(peakFixture(), views, GroupByHour)

	assert.Equal(t, 2, report.Hours[20].Interactions)
	assert.Equal(t, 0, report.Hours[20].Views)
	assert.Equal(t, 0.0, report.Hours[20].EngagementRate)
	assert.Equal(t, 14, report.Insights.PeakHour)
}

func TestPeakHours_Ranked(t *testing.T) {
	hourly := PeakHours(peakFixture(), nil, GroupByHour)
	require.Len(t, hourly.Ranked, 3)
	assert.Equal(t, []int{14, 20, 9}, []int{hourly.Ranked[0].Slot, hourly.Ranked[1].Slot, hourly.Ranked[2].Slot})
	assert.Equal(t, "14:00", hourly.Ranked[0].Label)

	daily := PeakHours(peakFixture(), nil, GroupByDay)
	require.Len(t, daily.Ranked, 2)
	assert.Equal(t, "Monday", daily.Ranked[0].Label)
	assert.Equal(t, 5, daily.Ranked[0].Interactions)
	assert.Equal(t, "Tuesday", daily.Ranked[1].Label)
}

func TestPeakHours_Empty(t *testing.T) {
	report := PeakHours(nil, nil, GroupByAll)

	assert.Equal(t, GroupByAll, report.GroupBy)
	assert.Zero(t, report.Insights.TotalInteractions)
	assert.Zero(t, report.Insights.PeakHour)
	assert.Zero(t, report.Insights.QuietestHour)
	assert.Empty(t, report.Ranked)
}

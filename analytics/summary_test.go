package analytics

import (
	"testing"

	"kucukaslan/interactions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	clicks := []domain.InteractionEvent{click("a", "t1", at(0, 1)), click("b", "t2", at(0, 2))}
	views := []domain.InteractionEvent{view("c", "p1", at(0, 1)), view("a", "p1", at(0, 3))}

	s := Summarize(clicks, views)

	assert.Equal(t, domain.Summary{TotalClicks: 2, TotalViews: 2, UniqueActors: 3, UniqueTargets: 3}, s)
}

func TestRealtime(t *testing.T) {
	events := []domain.InteractionEvent{
		click("a", "t", at(0, 1)),
		view("b", "p", at(0, 3)),
		click("b", "t", at(0, 2)),
	}

	report := Realtime(events, 2)

	assert.Equal(t, 2, report.Clicks)
	assert.Equal(t, 1, report.Views)
	assert.Equal(t, 2, report.ActiveActors)
	require.Len(t, report.Recent, 2)
	assert.Equal(t, at(0, 3), report.Recent[0].Timestamp)
	assert.Equal(t, at(0, 2), report.Recent[1].Timestamp)
}

func TestRealtime_Empty(t *testing.T) {
	report := Realtime(nil, 0)

	assert.NotNil(t, report.Recent)
	assert.Empty(t, report.Recent)
}

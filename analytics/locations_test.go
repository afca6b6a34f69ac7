package analytics

import (
	"math"
	"testing"

	"kucukaslan/interactions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations_GroupsByExactCoordinates(t *testing.T) {
	events := []domain.InteractionEvent{
		located(click("a", "t1", at(0, 9)), 28.9784, 41.0082),
		located(click("b", "t1", at(0, 10)), 28.9784, 41.0082),
		located(click("a", "t2", at(0, 11)), 28.9784, 41.0082),
		located(click("c", "t1", at(0, 12)), 28.97841, 41.0082),
		click("d", "t1", at(0, 13)),
	}

	report := Locations(events, 0)

	require.Len(t, report.Locations, 3)
	top := report.Locations[0]
	assert.Equal(t, 3, top.Count)
	assert.Equal(t, 2, top.UniqueClicks)
	assert.InDelta(t, 60.0, top.Percentage, 1e-9)
	assert.Equal(t, "41.0082, 28.9784", top.Label)

	assert.Equal(t, 5, report.Summary.TotalClicks)
	assert.Equal(t, 3, report.Summary.UniqueLocations)
	assert.Equal(t, 4, report.Summary.UniqueActors)

	var unknown *domain.LocationBucket
	for i := range report.Locations {
		if report.Locations[i].Longitude == 0 && report.Locations[i].Latitude == 0 {
			unknown = &report.Locations[i]
		}
	}
	require.NotNil(t, unknown)
	assert.Equal(t, domain.UnknownLocationLabel, unknown.Label)
}

func TestLocations_PercentagesSumToHundred(t *testing.T) {
	var events []domain.InteractionEvent
	for i := range 7 {
		events = append(events, located(click("a", "t", at(0, i)), float64(i%3), 1))
	}

	report := Locations(events, 0)

	sum := 0.0
	for _, b := range report.Locations {
		sum += b.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestLocations_TiesBreakOnMostRecentClick(t *testing.T) {
	events := []domain.InteractionEvent{
		located(click("a", "t", at(0, 1)), 1, 1),
		located(click("b", "t", at(0, 5)), 2, 2),
	}

	report := Locations(events, 0)

	require.Len(t, report.Locations, 2)
	assert.Equal(t, 2.0, report.Locations[0].Longitude)
	assert.Equal(t, 1.0, report.Locations[1].Longitude)
}

func TestLocations_LimitKeepsSharesOfFullSet(t *testing.T) {
	events := []domain.InteractionEvent{
		located(click("a", "t", at(0, 1)), 1, 1),
		located(click("b", "t", at(0, 2)), 1, 1),
		located(click("c", "t", at(0, 3)), 2, 2),
		located(click("d", "t", at(0, 4)), 3, 3),
	}

	report := Locations(events, 1)

	require.Len(t, report.Locations, 1)
	assert.InDelta(t, 50.0, report.Locations[0].Percentage, 1e-9)
	assert.Equal(t, 3, report.Summary.UniqueLocations)
}

func TestLocations_Empty(t *testing.T) {
	report := Locations(nil, 10)

	assert.Empty(t, report.Locations)
	assert.Zero(t, report.Summary.TotalClicks)
}

func TestLocations_NegativeZeroSharesUnknownBucket(t *testing.T) {
	negZero := math.Copysign(0, -1)
	events := []domain.InteractionEvent{
		located(click("a", "t1", at(0, 9)), negZero, 0),
		click("b", "t1", at(0, 10)),
		located(click("c", "t1", at(0, 11)), 0, negZero),
	}

	report := Locations(events, 0)

	require.Len(t, report.Locations, 1)
	bucket := report.Locations[0]
	assert.Equal(t, 3, bucket.Count)
	assert.Equal(t, "0,0", bucket.Key)
	assert.Equal(t, domain.UnknownLocationLabel, bucket.Label)
	assert.False(t, math.Signbit(bucket.Longitude))
	assert.False(t, math.Signbit(bucket.Latitude))
}

func TestCoordinates_KeyFoldsNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)

	assert.Equal(t, "0,41.0082", domain.Coordinates{Longitude: negZero, Latitude: 41.0082}.Key())
	assert.Equal(t, "41.0082, 0.0000", domain.Coordinates{Longitude: negZero, Latitude: 41.0082}.Label())
	assert.Equal(t, domain.Coordinates{Latitude: 41.0082}.Key(), domain.Coordinates{Longitude: negZero, Latitude: 41.0082}.Key())
}

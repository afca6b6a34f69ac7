package analytics

import (
	"slices"

	"kucukaslan/interactions/domain"
)

// DefaultLocationLimit caps location reports when the caller gives no limit.
const DefaultLocationLimit = 50

type locationGroup struct {
	bucket domain.LocationBucket
	actors actorSet
}

// Locations groups events by their exact coordinate pair. Percentages are taken
// over all buckets before the list is cut to limit; limit <= 0 keeps every bucket.
func Locations(events []domain.InteractionEvent, limit int) domain.LocationReport {
	groups := make(map[string]*locationGroup)
	actors := make(actorSet)

	for _, e := range events {
		coords := e.Coordinates.Normalized()
		key := coords.Key()
		g, ok := groups[key]
		if !ok {
			label := e.LocationLabel
			if label == "" {
				label = coords.Label()
			}
			g = &locationGroup{
				bucket: domain.LocationBucket{
					Key:       key,
					Longitude: coords.Longitude,
					Latitude:  coords.Latitude,
					Label:     label,
				},
				actors: make(actorSet),
			}
			groups[key] = g
		}

		g.bucket.Count++
		g.actors.add(e.ActorID)
		if e.Timestamp.After(g.bucket.LastClick) {
			g.bucket.LastClick = e.Timestamp
		}
		actors.add(e.ActorID)
	}

	buckets := make([]domain.LocationBucket, 0, len(groups))
	for _, g := range groups {
		b := g.bucket
		b.UniqueClicks = len(g.actors)
		b.Percentage = percentage(b.Count, len(events))
		buckets = append(buckets, b)
	}
	slices.SortFunc(buckets, func(a, b domain.LocationBucket) int {
		return byActivity(a.Count, b.Count, a.LastClick, b.LastClick, a.Key, b.Key)
	})

	return domain.LocationReport{
		Locations: truncate(buckets, limit),
		Summary: domain.LocationSummary{
			TotalClicks:     len(events),
			UniqueLocations: len(buckets),
			UniqueActors:    len(actors),
		},
	}
}

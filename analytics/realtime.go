package analytics

import (
	"cmp"
	"slices"

	"kucukaslan/interactions/domain"
)

// DefaultRecentLimit caps the latest events listed in a realtime report.
const DefaultRecentLimit = 20

// Realtime summarizes a rolling window. Recent lists the newest events first.
func Realtime(events []domain.InteractionEvent, recentLimit int) domain.RealtimeReport {
	report := domain.RealtimeReport{}
	actors := make(actorSet)
	for _, e := range events {
		actors.add(e.ActorID)
		switch e.Type {
		case domain.InteractionClick:
			report.Clicks++
		case domain.InteractionView:
			report.Views++
		}
	}
	report.ActiveActors = len(actors)

	recent := slices.Clone(events)
	slices.SortStableFunc(recent, func(a, b domain.InteractionEvent) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	report.Recent = truncate(recent, recentLimit)
	if report.Recent == nil {
		report.Recent = []domain.InteractionEvent{}
	}
	return report
}

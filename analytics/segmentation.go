package analytics

import (
	"slices"

	"kucukaslan/interactions/domain"
)

// Segment splits the actors of period into returning (seen in history) and new.
// historyActors are the distinct actors with activity strictly before the
// window start; period holds the events inside the window.
func Segment(historyActors []string, period []domain.InteractionEvent) domain.Segmentation {
	history := make(actorSet, len(historyActors))
	for _, id := range historyActors {
		history.add(id)
	}

	periodActors := make(actorSet)
	for _, e := range period {
		periodActors.add(e.ActorID)
	}

	seg := domain.Segmentation{
		PeriodActors:      len(periodActors),
		ReturningActorIDs: []string{},
		NewActorIDs:       []string{},
	}
	for id := range periodActors {
		if history.has(id) {
			seg.ReturningActorIDs = append(seg.ReturningActorIDs, id)
		} else {
			seg.NewActorIDs = append(seg.NewActorIDs, id)
		}
	}
	slices.Sort(seg.ReturningActorIDs)
	slices.Sort(seg.NewActorIDs)
	seg.Returning = len(seg.ReturningActorIDs)
	seg.New = len(seg.NewActorIDs)

	for _, e := range period {
		if history.has(e.ActorID) {
			seg.ReturningClicks++
		} else {
			seg.NewClicks++
		}
	}

	seg.ReturningRate = percentage(seg.Returning, seg.PeriodActors)
	seg.NewRate = percentage(seg.New, seg.PeriodActors)
	return seg
}
